package domain

import "time"

// VerificationStatus is the overall verdict for one email address.
type VerificationStatus string

const (
	StatusValid   VerificationStatus = "valid"
	StatusRisky   VerificationStatus = "risky"
	StatusInvalid VerificationStatus = "invalid"
	StatusUnknown VerificationStatus = "unknown"
)

// VerificationStage names one step of the pipeline.
type VerificationStage string

const (
	StageSyntax   VerificationStage = "syntax"
	StageMX       VerificationStage = "mx"
	StageCatchAll VerificationStage = "catchAll"
	StageSMTP     VerificationStage = "smtp"
)

// CatchAllVerdict is the outcome of catch-all detection for a domain.
type CatchAllVerdict string

const (
	CatchAllYes     CatchAllVerdict = "yes"
	CatchAllNo      CatchAllVerdict = "no"
	CatchAllUnknown CatchAllVerdict = "unknown"
)

// ProbeVerdict is the outcome of an SMTP-level probe for an email.
type ProbeVerdict string

const (
	ProbeAccept  ProbeVerdict = "accept"
	ProbeReject  ProbeVerdict = "reject"
	ProbeUnknown ProbeVerdict = "unknown"
)

// MXRecord is one mail exchanger for a domain, lowest priority preferred.
type MXRecord struct {
	Exchange string `json:"exchange"`
	Priority uint16 `json:"priority"`
}

// StageResult records the outcome of a single pipeline stage.
type StageResult struct {
	OK       bool            `json:"ok"`
	Records  []MXRecord      `json:"records,omitempty"`
	CatchAll CatchAllVerdict `json:"catch_all,omitempty"`
	Verdict  ProbeVerdict    `json:"verdict,omitempty"`
}

// VerificationSteps holds per-stage results; a nil entry means the stage
// did not run.
type VerificationSteps struct {
	Syntax   *StageResult `json:"syntax,omitempty"`
	MX       *StageResult `json:"mx,omitempty"`
	CatchAll *StageResult `json:"catchAll,omitempty"`
	SMTP     *StageResult `json:"smtp,omitempty"`
}

// VerificationResult is the outcome of running the pipeline on one email.
// Reasons is an ordered, append-only diagnostic trail, never control flow.
type VerificationResult struct {
	Email     string             `json:"email"`
	Domain    string             `json:"domain"`
	Status    VerificationStatus `json:"status"`
	Reasons   []string           `json:"reasons,omitempty"`
	Steps     VerificationSteps  `json:"steps"`
	CheckedAt time.Time          `json:"checked_at"`
	TTL       time.Duration      `json:"ttl_ms"`
}
