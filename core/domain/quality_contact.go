package domain

// EmailClass categorizes the local part of an email address.
type EmailClass string

const (
	EmailClassPersonal EmailClass = "personal" // first.last-shaped, likely a person
	EmailClassRole     EmailClass = "role"     // info@, sales@, support@, ...
	EmailClassGeneric  EmailClass = "generic"  // single token, not a known role
	EmailClassUnknown  EmailClass = "unknown"  // invalid or unclassifiable
)

// IgnoreReason explains why an email address should be dropped outright.
type IgnoreReason string

const (
	IgnoreInvalidFormat     IgnoreReason = "invalid_format"
	IgnorePlaceholderDomain IgnoreReason = "placeholder_domain"
	IgnoreDisposableDomain  IgnoreReason = "disposable_domain"
	IgnoreNoReply           IgnoreReason = "no_reply"
	IgnorePlatformSender    IgnoreReason = "platform_sender"
	IgnoreTesting           IgnoreReason = "testing"
	IgnoreEmpty             IgnoreReason = "empty"
)

// RawContact is a scraped contact fragment before any cleaning.
// The scraper layer fills whatever it found; every field may be noise.
type RawContact struct {
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Title    string   `json:"title,omitempty"`
	LinkedIn string   `json:"linkedin,omitempty"`
	Tech     []string `json:"tech,omitempty"`
}

// SanitizedContact is the cleaned, usable output of the sanitizer.
// It only exists when at least one of name/email/phone survived cleaning.
type SanitizedContact struct {
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	EmailClass EmailClass `json:"email_class,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Title      string     `json:"title,omitempty"`
	LinkedIn   string     `json:"linkedin,omitempty"`
	Tech       []string   `json:"tech,omitempty"`
}

// HasSignal reports whether the contact carries anything worth keeping.
func (c *SanitizedContact) HasSignal() bool {
	return c != nil && (c.Name != "" || c.Email != "" || c.Phone != "")
}

// NamePair is one observed (name, email) pair used as pattern evidence.
type NamePair struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
