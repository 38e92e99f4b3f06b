package emailfilter

import "regexp"

// Static detection tables. Pure data; logic lives in quality_emailfilter.go.

// placeholderDomains are documentation/example domains that never carry
// a real mailbox.
var placeholderDomains = map[string]bool{
	"example.com":         true,
	"example.org":         true,
	"example.net":         true,
	"email.com":           true,
	"domain.com":          true,
	"yourdomain.com":      true,
	"yourcompany.com":     true,
	"company.com":         true,
	"test.com":            true,
	"sample.com":          true,
	"mysite.com":          true,
	"website.com":         true,
	"sentry.io":           true,
	"sentry.wixpress.com": true,
	"localhost":           true,
}

// disposableDomains are throwaway inbox providers.
var disposableDomains = map[string]bool{
	"mailinator.com":    true,
	"guerrillamail.com": true,
	"10minutemail.com":  true,
	"tempmail.com":      true,
	"temp-mail.org":     true,
	"throwaway.email":   true,
	"yopmail.com":       true,
	"getnada.com":       true,
	"maildrop.cc":       true,
	"trashmail.com":     true,
	"sharklasers.com":   true,
	"dispostable.com":   true,
	"fakeinbox.com":     true,
	"mintemail.com":     true,
	"mohmal.com":        true,
	"spamgourmet.com":   true,
}

// noReplyLocals are no-reply local parts across languages. Lookup strips
// dots first, so "no.reply" and "noreply" both match.
var noReplyLocals = map[string]bool{
	// English
	"noreply":       true,
	"no-reply":      true,
	"donotreply":    true,
	"do-not-reply":  true,
	"noresponse":    true,
	"mailer-daemon": true,
	"postmaster":    true,
	"bounce":        true,
	"bounces":       true,
	"notifications": true,
	"notification":  true,
	"alerts":        true,
	"alert":         true,
	"automated":     true,
	"auto-confirm":  true,
	"unsubscribe":   true,
	// German
	"keineantwort":    true,
	"keine-antwort":   true,
	"nichtantworten":  true,
	"nicht-antworten": true,
	// French
	"nepasrepondre":   true,
	"ne-pas-repondre": true,
	"sansreponse":     true,
	// Spanish
	"noresponder":  true,
	"no-responder": true,
	"nocontestar":  true,
	// Italian
	"nonrispondere":  true,
	"non-rispondere": true,
	// Portuguese
	"naoresponda":  true,
	"nao-responda": true,
	"naoresponder": true,
	// Dutch
	"nietbeantwoorden":  true,
	"niet-beantwoorden": true,
	// Polish
	"nieodpowiadac":  true,
	"nie-odpowiadac": true,
}

// roleLocals are role addresses that belong to a function, not a person.
var roleLocals = map[string]bool{
	"info":         true,
	"contact":      true,
	"hello":        true,
	"hi":           true,
	"mail":         true,
	"office":       true,
	"admin":        true,
	"webmaster":    true,
	"sales":        true,
	"marketing":    true,
	"support":      true,
	"help":         true,
	"service":      true,
	"billing":      true,
	"accounts":     true,
	"accounting":   true,
	"finance":      true,
	"hr":           true,
	"jobs":         true,
	"careers":      true,
	"recruiting":   true,
	"recruitment":  true,
	"press":        true,
	"media":        true,
	"pr":           true,
	"legal":        true,
	"privacy":      true,
	"security":     true,
	"abuse":        true,
	"team":         true,
	"partners":     true,
	"partnership":  true,
	"partnerships": true,
	"enquiries":    true,
	"inquiries":    true,
	"enquiry":      true,
	"inquiry":      true,
	"feedback":     true,
	"bookings":     true,
	"booking":      true,
	"reservations": true,
	"orders":       true,
	"shop":         true,
	"newsletter":   true,
}

// platformSenderPatterns match transactional/marketing platform sender
// domains whose mail never identifies a scraped lead.
var platformSenderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(^|\.)sendgrid\.(net|com)$`),
	regexp.MustCompile(`(^|\.)mailgun\.(org|com)$`),
	regexp.MustCompile(`(^|\.)mailchimp\.com$`),
	regexp.MustCompile(`(^|\.)mandrillapp\.com$`),
	regexp.MustCompile(`(^|\.)amazonses\.com$`),
	regexp.MustCompile(`(^|\.)sparkpostmail\.com$`),
	regexp.MustCompile(`(^|\.)postmarkapp\.com$`),
	regexp.MustCompile(`(^|\.)sendinblue\.com$`),
	regexp.MustCompile(`(^|\.)brevo\.com$`),
	regexp.MustCompile(`(^|\.)hubspotemail\.net$`),
	regexp.MustCompile(`(^|\.)salesforce\.com$`),
	regexp.MustCompile(`(^|\.)marketo\.com$`),
	regexp.MustCompile(`(^|\.)customeriomail\.com$`),
	regexp.MustCompile(`(^|\.)intercom-mail\.com$`),
	regexp.MustCompile(`(^|\.)zendesk\.com$`),
	regexp.MustCompile(`(^|\.)freshdesk\.com$`),
	regexp.MustCompile(`(^|\.)wixpress\.com$`),
	regexp.MustCompile(`(^|\.)squarespace\.com$`),
	regexp.MustCompile(`(^|\.)shopifyemail\.com$`),
}
