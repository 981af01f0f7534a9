package entities

import "time"

// AcceptanceStatus tracks whether the counterparty has acknowledged a
// lending record.
type AcceptanceStatus string

const (
	AcceptancePending  AcceptanceStatus = "pending"
	AcceptanceAccepted AcceptanceStatus = "accepted"
)

func (s AcceptanceStatus) Valid() bool {
	return s == AcceptancePending || s == AcceptanceAccepted
}

// Label renders the status for display.
func (s AcceptanceStatus) Label() string {
	if s == AcceptanceAccepted {
		return "Accepted"
	}
	return "Awaiting acceptance"
}

// LendingRecord is one person's token ledger entry owned by a lender.
// TokenCount is the outstanding balance; TotalTokensLent is the
// lifetime total and never decreases.
type LendingRecord struct {
	RecordID         string
	LenderUserID     string
	PersonName       string
	TokenCount       int64
	TotalTokensLent  int64
	AcceptanceStatus AcceptanceStatus
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WellFormed reports whether the record satisfies the ledger
// invariants: a non-negative balance bounded by the lifetime total and
// a known acceptance status.
func (r LendingRecord) WellFormed() bool {
	if r.TokenCount < 0 || r.TokenCount > r.TotalTokensLent {
		return false
	}
	return r.AcceptanceStatus.Valid()
}
