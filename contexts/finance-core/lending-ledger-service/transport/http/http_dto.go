package http

import "time"

// LendingRecordDTO is the wire form of one ledger entry.
type LendingRecordDTO struct {
	RecordID         string    `json:"record_id"`
	LenderUserID     string    `json:"lender_user_id"`
	PersonName       string    `json:"person_name"`
	TokenCount       int64     `json:"token_count"`
	TotalTokensLent  int64     `json:"total_tokens_lent"`
	AcceptanceStatus string    `json:"acceptance_status"`
	StatusLabel      string    `json:"status_label"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ListRecordsResponse wraps a lender's ledger.
type ListRecordsResponse struct {
	Records []LendingRecordDTO `json:"records"`
}

// CreateRecordRequest opens a ledger entry.
type CreateRecordRequest struct {
	PersonName    string `json:"person_name"`
	InitialTokens int64  `json:"initial_tokens"`
}

// TokenAmountRequest carries the token count for lend and settle.
type TokenAmountRequest struct {
	TokenCount int64 `json:"token_count"`
}

// ErrorResponse is the transport error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
