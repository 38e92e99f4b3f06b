// Package emailfilter validates, screens, and classifies email addresses.
package emailfilter

import (
	"regexp"
	"strings"

	"quality_server/core/domain"
)

// Permissive local@domain-with-dot shape, deliberately not full RFC 5322.
var formatRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IgnoreDecision is the outcome of ShouldIgnore. Reason is set only when
// Ignore is true.
type IgnoreDecision struct {
	Ignore bool                `json:"ignore"`
	Reason domain.IgnoreReason `json:"reason,omitempty"`
}

// IsValidFormat reports whether the email has a non-empty local part and
// a domain containing a dot.
func IsValidFormat(email string) bool {
	return formatRe.MatchString(strings.TrimSpace(email))
}

// Normalize lowercases, trims, and strips a +suffix addressing trick
// from the local part.
func Normalize(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return email
	}
	local, dom := email[:at], email[at+1:]
	if plus := strings.Index(local, "+"); plus > 0 {
		local = local[:plus]
	}
	return local + "@" + dom
}

// Domain extracts the domain part, lowercased. Empty when absent.
func Domain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email[at+1:]))
}

// LocalPart extracts the local part, lowercased, without any +suffix.
func LocalPart(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	local := email[:at]
	if plus := strings.Index(local, "+"); plus > 0 {
		local = local[:plus]
	}
	return local
}

// ShouldIgnore decides whether an address is useless for lead purposes.
// Checks run in fixed priority order; the first match wins.
func ShouldIgnore(email string) IgnoreDecision {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return IgnoreDecision{Ignore: true, Reason: domain.IgnoreEmpty}
	}
	if !IsValidFormat(trimmed) {
		return IgnoreDecision{Ignore: true, Reason: domain.IgnoreInvalidFormat}
	}

	dom := Domain(trimmed)
	local := LocalPart(trimmed)

	if placeholderDomains[dom] {
		return IgnoreDecision{Ignore: true, Reason: domain.IgnorePlaceholderDomain}
	}
	if disposableDomains[dom] {
		return IgnoreDecision{Ignore: true, Reason: domain.IgnoreDisposableDomain}
	}
	if noReplyLocals[local] || noReplyLocals[strings.ReplaceAll(local, ".", "")] {
		return IgnoreDecision{Ignore: true, Reason: domain.IgnoreNoReply}
	}
	for _, re := range platformSenderPatterns {
		if re.MatchString(dom) {
			return IgnoreDecision{Ignore: true, Reason: domain.IgnorePlatformSender}
		}
	}
	if strings.Contains(local, "test") || strings.Contains(local, "demo") ||
		strings.Contains(local, "example") {
		return IgnoreDecision{Ignore: true, Reason: domain.IgnoreTesting}
	}

	return IgnoreDecision{}
}

// Classify buckets an address as personal, role, generic, or unknown.
// Separate from ShouldIgnore on purpose: an address can be kept yet
// classified role, and callers decide policy.
func Classify(email string) domain.EmailClass {
	if !IsValidFormat(email) {
		return domain.EmailClassUnknown
	}
	local := LocalPart(email)

	if roleLocals[local] {
		return domain.EmailClassRole
	}
	// Heuristic: personal addresses are usually first.last-shaped.
	if strings.ContainsAny(local, "._-") {
		return domain.EmailClassPersonal
	}
	return domain.EmailClassGeneric
}
