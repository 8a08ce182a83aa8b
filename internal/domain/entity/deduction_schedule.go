package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionSchedule is the upcoming-deduction view of an ACTIVE SIP
type DeductionSchedule struct {
	TransactionID     string
	FundID            uint64
	Amount            decimal.Decimal
	Frequency         string
	DeductionDay      *int
	NextDeductionDate *time.Time
}

// ToDeductionSchedule projects a SIP onto its deduction view
func ToDeductionSchedule(tx *Transaction) DeductionSchedule {
	view := DeductionSchedule{
		TransactionID: tx.ID.String(),
		FundID:        tx.FundID,
		Amount:        tx.Amount(),
	}

	if tx.SIP != nil {
		view.Frequency = string(tx.SIP.Frequency)
		view.DeductionDay = tx.SIP.DeductionDay
		view.NextDeductionDate = tx.SIP.NextDeductionDate
	}

	return view
}
