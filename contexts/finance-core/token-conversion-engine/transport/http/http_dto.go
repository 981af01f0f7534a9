package httptransport

// ConvertPriceRequest carries the bill price as a decimal string to keep
// currency amounts out of binary floating point on the wire.
type ConvertPriceRequest struct {
	Price string `json:"price"`
}

type ConvertPriceResponse struct {
	TokenCount     int64  `json:"token_count"`
	ChangeDue      string `json:"change_due"`
	RealAmountPaid string `json:"real_amount_paid"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
