package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// TransactionID is set when a transaction was stored but could not be linked to the portfolio
	TransactionID string `json:"transactionId,omitempty"`
}
