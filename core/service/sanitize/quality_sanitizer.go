// Package sanitize turns raw scraped contact fragments into clean
// records or discards them.
package sanitize

import (
	"strings"

	"quality_server/core/domain"
	"quality_server/core/service/emailfilter"
	"quality_server/core/service/navlabel"
	"quality_server/core/service/phone"
	"quality_server/core/service/techstack"
	"quality_server/core/service/textrepair"
)

// Options tunes the clean-or-discard policy.
type Options struct {
	// PreferUSPhones formats ambiguous 10-digit numbers as NANP.
	PreferUSPhones bool
	// DeprioritizeRoleEmails drops contacts whose only signal is a
	// role-classified email, keeping "info@" noise out of the list
	// while role emails attached to named contacts survive.
	DeprioritizeRoleEmails bool
}

// Sanitizer composes the repair, classification, and normalization
// passes into a single clean-or-discard decision per scraped contact.
type Sanitizer struct {
	nav *navlabel.Detector
}

// NewSanitizer builds a sanitizer with the static nav-label lexicon.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{nav: NewDetector()}
}

// NewDetector exposes the detector used by the sanitizer so callers can
// share one lexicon instance.
func NewDetector() *navlabel.Detector {
	return navlabel.NewDetector()
}

// Sanitize cleans one raw contact. Returns nil when nothing usable
// remains: no name, no email, no phone, or a nav-label name with no
// other signal. Never errors; bad input is rejected, not raised.
func (s *Sanitizer) Sanitize(raw *domain.RawContact, opts Options) *domain.SanitizedContact {
	if raw == nil {
		return nil
	}

	name := textrepair.Repair(raw.Name)
	if name != "" && s.nav.IsNavLabel(name) {
		name = ""
	}

	var email string
	var emailClass domain.EmailClass
	if decision := emailfilter.ShouldIgnore(raw.Email); !decision.Ignore {
		email = emailfilter.Normalize(raw.Email)
		emailClass = emailfilter.Classify(email)
	}

	var phoneStr string
	if p := phone.Normalize(raw.Phone, phone.Options{PreferUS: opts.PreferUSPhones}); p.Normalized != "" {
		phoneStr = p.Normalized
	}

	if name == "" && email == "" && phoneStr == "" {
		return nil
	}

	// A lone role email with no identifying signal is noise, not a lead.
	if opts.DeprioritizeRoleEmails &&
		emailClass == domain.EmailClassRole &&
		name == "" && phoneStr == "" {
		return nil
	}

	contact := &domain.SanitizedContact{
		Name:       name,
		Email:      email,
		EmailClass: emailClass,
		Phone:      phoneStr,
		Title:      textrepair.CollapseWhitespace(raw.Title),
		Tech:       techstack.NormalizeAll(raw.Tech),
	}
	if isLinkedInURL(raw.LinkedIn) {
		contact.LinkedIn = strings.TrimSpace(raw.LinkedIn)
	}
	return contact
}

// Merge combines two partial records suspected to be the same person:
// longer string wins for name/title, first-present wins for
// single-valued fields. Pairwise only; callers fold.
func Merge(a, b *domain.SanitizedContact) *domain.SanitizedContact {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	merged := &domain.SanitizedContact{
		Name:       textrepair.Longest(a.Name, b.Name),
		Title:      textrepair.Longest(a.Title, b.Title),
		Email:      a.Email,
		EmailClass: a.EmailClass,
		Phone:      a.Phone,
		LinkedIn:   a.LinkedIn,
		Tech:       textrepair.DedupeStrings(append(append([]string{}, a.Tech...), b.Tech...)),
	}
	if merged.Email == "" {
		merged.Email = b.Email
		merged.EmailClass = b.EmailClass
	}
	if merged.Phone == "" {
		merged.Phone = b.Phone
	}
	if merged.LinkedIn == "" {
		merged.LinkedIn = b.LinkedIn
	}
	return merged
}

func isLinkedInURL(s string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(s)), "linkedin.com/")
}
