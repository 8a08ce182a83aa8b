package dto

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
)

// dateLayout is the short form accepted for start and end dates
const dateLayout = "2006-01-02"

// CreateSIPRequest represents the API request for a new SIP
type CreateSIPRequest struct {
	FundID       uint64 `json:"fundId" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	Frequency    string `json:"frequency" binding:"required"`
	StartDate    string `json:"startDate" binding:"required"`
	EndDate      string `json:"endDate" binding:"required"`
	DeductionDay *int   `json:"deductionDay"`
}

// CreateLumpsumRequest represents the API request for a one-time investment
type CreateLumpsumRequest struct {
	FundID uint64 `json:"fundId" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// TransactionResponse represents one transaction in API responses
type TransactionResponse struct {
	ID                string     `json:"id"`
	UserID            uint64     `json:"userId"`
	FundID            uint64     `json:"fundId"`
	Type              string     `json:"type"`
	Amount            string     `json:"amount"`
	Units             string     `json:"units"`
	NAVAtPurchase     string     `json:"navAtPurchase"`
	Status            string     `json:"status"`
	StartDate         time.Time  `json:"startDate"`
	Frequency         string     `json:"frequency,omitempty"`
	DeductionDay      *int       `json:"deductionDay,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	LastDeductionDate *time.Time `json:"lastDeductionDate,omitempty"`
	NextDeductionDate *time.Time `json:"nextDeductionDate,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// PortfolioResponse lists a user's transactions
type PortfolioResponse struct {
	UserID       uint64                `json:"userId"`
	Transactions []TransactionResponse `json:"transactions"`
}

// DeductionScheduleResponse is one upcoming deduction
type DeductionScheduleResponse struct {
	TransactionID     string     `json:"transactionId"`
	FundID            uint64     `json:"fundId"`
	Amount            string     `json:"amount"`
	Frequency         string     `json:"frequency"`
	DeductionDay      *int       `json:"deductionDay,omitempty"`
	NextDeductionDate *time.Time `json:"nextDeductionDate"`
}

// NewTransactionResponse maps a transaction onto its API representation
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:            tx.ID.String(),
		UserID:        tx.UserID,
		FundID:        tx.FundID,
		Type:          string(tx.Type),
		Amount:        entity.FormatAmount(tx.Amount()),
		Units:         tx.Units().StringFixed(entity.UnitsPrecision),
		NAVAtPurchase: tx.NAVAtPurchase().String(),
		Status:        string(tx.Status),
		StartDate:     tx.StartDate,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}

	if tx.SIP != nil {
		end := tx.SIP.EndDate
		resp.Frequency = string(tx.SIP.Frequency)
		resp.DeductionDay = tx.SIP.DeductionDay
		resp.EndDate = &end
		resp.LastDeductionDate = tx.SIP.LastDeductionDate
		resp.NextDeductionDate = tx.SIP.NextDeductionDate
	}

	return resp
}

// NewPortfolioResponse maps a user's transactions
func NewPortfolioResponse(userID uint64, txs []*entity.Transaction) PortfolioResponse {
	resp := PortfolioResponse{
		UserID:       userID,
		Transactions: make([]TransactionResponse, 0, len(txs)),
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, NewTransactionResponse(tx))
	}
	return resp
}

// NewDeductionScheduleResponses maps the upcoming deductions
func NewDeductionScheduleResponses(schedules []entity.DeductionSchedule) []DeductionScheduleResponse {
	resp := make([]DeductionScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		resp = append(resp, DeductionScheduleResponse{
			TransactionID:     s.TransactionID,
			FundID:            s.FundID,
			Amount:            entity.FormatAmount(s.Amount),
			Frequency:         s.Frequency,
			DeductionDay:      s.DeductionDay,
			NextDeductionDate: s.NextDeductionDate,
		})
	}
	return resp
}

// ParseDate accepts YYYY-MM-DD or RFC3339. Short dates are midnight UTC.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", value)
	}
	return t.UTC(), nil
}
