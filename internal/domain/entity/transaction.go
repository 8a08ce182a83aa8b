package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/schedule"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes recurring plans from one-time investments
type TransactionType string

// Transaction types
const (
	TypeSIP     TransactionType = "SIP"
	TypeLumpsum TransactionType = "LUMPSUM"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusActive    TransactionStatus = "ACTIVE"
	StatusPaused    TransactionStatus = "PAUSED"
	StatusCancelled TransactionStatus = "CANCELLED"
	StatusCompleted TransactionStatus = "COMPLETED"
)

// SIPSchedule holds the fields that only exist on SIP transactions
type SIPSchedule struct {
	Frequency         schedule.Frequency
	DeductionDay      *int // set iff Frequency is MONTHLY
	EndDate           time.Time
	LastDeductionDate *time.Time
	NextDeductionDate *time.Time
}

// Transaction is one investment into a fund on behalf of a user.
// Amount, units and NAV are captured at creation and never change.
type Transaction struct {
	ID        uuid.UUID
	UserID    uint64
	FundID    uint64
	Type      TransactionType
	StartDate time.Time
	Status    TransactionStatus
	SIP       *SIPSchedule // nil for LUMPSUM
	Version   uint64       // bumped by the store on every successful update
	CreatedAt time.Time
	UpdatedAt time.Time

	amount        decimal.Decimal
	units         decimal.Decimal
	navAtPurchase decimal.Decimal
}

// SIPParams carries the caller-supplied fields of a new SIP
type SIPParams struct {
	UserID       uint64
	Amount       decimal.Decimal
	Frequency    string
	StartDate    time.Time
	EndDate      time.Time
	DeductionDay *int
}

// NewSIP builds a validated SIP transaction against fund, computing its first deduction date from now
func NewSIP(p SIPParams, fund *Fund, now time.Time) (*Transaction, error) {
	if p.UserID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	if err := fund.CheckInvestment(p.Amount); err != nil {
		return nil, err
	}

	frequency, err := ParseFrequency(p.Frequency)
	if err != nil {
		return nil, err
	}

	var deductionDay *int
	if frequency == schedule.Monthly {
		if err := schedule.ValidateDeductionDay(p.DeductionDay); err != nil {
			return nil, err
		}
		day := *p.DeductionDay
		deductionDay = &day
	}

	if p.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", errs.ErrInvalidDateRange)
	}
	if p.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: end date is required for SIP", errs.ErrInvalidDateRange)
	}
	if p.EndDate.Before(p.StartDate) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s",
			errs.ErrInvalidDateRange, p.EndDate.Format(time.DateOnly), p.StartDate.Format(time.DateOnly))
	}

	day := 0
	if deductionDay != nil {
		day = *deductionDay
	}
	next := schedule.InitialNextDeduction(frequency, p.StartDate, day, now)

	tx := newTransaction(p.UserID, fund, TypeSIP, p.Amount, p.StartDate, now)
	tx.SIP = &SIPSchedule{
		Frequency:         frequency,
		DeductionDay:      deductionDay,
		EndDate:           p.EndDate,
		NextDeductionDate: &next,
	}
	return tx, nil
}

// NewLumpsum builds a one-shot investment starting now
func NewLumpsum(userID uint64, amount decimal.Decimal, fund *Fund, now time.Time) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	if err := fund.CheckInvestment(amount); err != nil {
		return nil, err
	}

	return newTransaction(userID, fund, TypeLumpsum, amount, now, now), nil
}

func newTransaction(userID uint64, fund *Fund, txType TransactionType, amount decimal.Decimal, start, now time.Time) *Transaction {
	return &Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		FundID:        fund.ID,
		Type:          txType,
		StartDate:     start,
		Status:        StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
		amount:        amount,
		units:         ComputeUnits(amount, fund.NAV),
		navAtPurchase: fund.NAV,
	}
}

// TransactionRecord is the flat persisted shape of a transaction, used to rebuild it from storage
type TransactionRecord struct {
	ID                uuid.UUID
	UserID            uint64
	FundID            uint64
	Type              string
	Amount            decimal.Decimal
	Units             decimal.Decimal
	NAVAtPurchase     decimal.Decimal
	Frequency         *string
	DeductionDay      *int
	StartDate         time.Time
	EndDate           *time.Time
	Status            string
	LastDeductionDate *time.Time
	NextDeductionDate *time.Time
	Version           uint64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RestoreTransaction rebuilds a stored transaction without re-running creation rules
func RestoreTransaction(r TransactionRecord) *Transaction {
	tx := &Transaction{
		ID:            r.ID,
		UserID:        r.UserID,
		FundID:        r.FundID,
		Type:          TransactionType(r.Type),
		StartDate:     r.StartDate,
		Status:        TransactionStatus(r.Status),
		Version:       r.Version,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		amount:        r.Amount,
		units:         r.Units,
		navAtPurchase: r.NAVAtPurchase,
	}

	if tx.Type == TypeSIP {
		sip := &SIPSchedule{
			DeductionDay:      r.DeductionDay,
			LastDeductionDate: r.LastDeductionDate,
			NextDeductionDate: r.NextDeductionDate,
		}
		if r.Frequency != nil {
			sip.Frequency = schedule.Frequency(*r.Frequency)
		}
		if r.EndDate != nil {
			sip.EndDate = *r.EndDate
		}
		tx.SIP = sip
	}

	return tx
}

// Record flattens the transaction for storage
func (t *Transaction) Record() TransactionRecord {
	r := TransactionRecord{
		ID:            t.ID,
		UserID:        t.UserID,
		FundID:        t.FundID,
		Type:          string(t.Type),
		Amount:        t.amount,
		Units:         t.units,
		NAVAtPurchase: t.navAtPurchase,
		StartDate:     t.StartDate,
		Status:        string(t.Status),
		Version:       t.Version,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}

	if t.SIP != nil {
		frequency := string(t.SIP.Frequency)
		endDate := t.SIP.EndDate
		r.Frequency = &frequency
		r.DeductionDay = t.SIP.DeductionDay
		r.EndDate = &endDate
		r.LastDeductionDate = t.SIP.LastDeductionDate
		r.NextDeductionDate = t.SIP.NextDeductionDate
	}

	return r
}

// Amount returns the invested amount
func (t *Transaction) Amount() decimal.Decimal {
	return t.amount
}

// Units returns the fund units bought at creation
func (t *Transaction) Units() decimal.Decimal {
	return t.units
}

// NAVAtPurchase returns the fund NAV snapshot taken at creation
func (t *Transaction) NAVAtPurchase() decimal.Decimal {
	return t.navAtPurchase
}

// IsSIP reports whether this is a recurring plan
func (t *Transaction) IsSIP() bool {
	return t.Type == TypeSIP && t.SIP != nil
}

// Pause moves a SIP to PAUSED. Only the transaction type is checked.
func (t *Transaction) Pause(now time.Time) error {
	if !t.IsSIP() {
		return t.transitionError("pause", "only SIP transactions can be paused")
	}

	t.setStatus(StatusPaused, now)
	return nil
}

// Resume moves a PAUSED SIP back to ACTIVE
func (t *Transaction) Resume(now time.Time) error {
	if !t.IsSIP() {
		return t.transitionError("resume", "only SIP transactions can be resumed")
	}
	if t.Status != StatusPaused {
		return t.transitionError("resume", "transaction is not paused")
	}

	t.setStatus(StatusActive, now)
	return nil
}

// Cancel moves any non-cancelled transaction to CANCELLED
func (t *Transaction) Cancel(now time.Time) error {
	if t.Status == StatusCancelled {
		return t.transitionError("cancel", "transaction is already cancelled")
	}

	t.setStatus(StatusCancelled, now)
	return nil
}

// AdvanceDeduction records the pending deduction as executed and schedules the next one
func (t *Transaction) AdvanceDeduction(now time.Time) error {
	if !t.IsSIP() {
		return t.transitionError("advance deduction of", "only SIP transactions have deduction dates")
	}
	if t.Status != StatusActive {
		return t.transitionError("advance deduction of", "transaction is not active")
	}
	if t.SIP.NextDeductionDate == nil {
		return t.transitionError("advance deduction of", "transaction has no scheduled deduction")
	}

	executed := *t.SIP.NextDeductionDate
	next := schedule.Advance(t.SIP.Frequency, executed)

	t.SIP.LastDeductionDate = &executed
	t.SIP.NextDeductionDate = &next
	t.UpdatedAt = now
	return nil
}

// CompletionCutoff returns the instant that running SIPs must have ended before to count as exhausted at now.
// The end date is inclusive: a SIP runs through the whole of its end day.
func CompletionCutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -1)
}

// IsExhausted reports whether a running SIP has passed its end date
func (t *Transaction) IsExhausted(now time.Time) bool {
	if !t.IsSIP() {
		return false
	}
	if t.Status != StatusActive && t.Status != StatusPaused {
		return false
	}
	return t.SIP.EndDate.Before(CompletionCutoff(now))
}

// Complete marks a SIP whose end date has passed as COMPLETED
func (t *Transaction) Complete(now time.Time) error {
	if !t.IsExhausted(now) {
		return t.transitionError("complete", "only running SIP transactions past their end date can be completed")
	}

	t.setStatus(StatusCompleted, now)
	return nil
}

func (t *Transaction) setStatus(status TransactionStatus, now time.Time) {
	t.Status = status
	t.UpdatedAt = now
}

func (t *Transaction) transitionError(operation, reason string) error {
	return errs.NewTransitionError(t.ID.String(), operation, string(t.Type), string(t.Status), reason)
}

// ParseFrequency normalizes a frequency name, accepting any letter case
func ParseFrequency(value string) (schedule.Frequency, error) {
	frequency := schedule.Frequency(strings.ToUpper(strings.TrimSpace(value)))
	if !frequency.IsValid() {
		return "", fmt.Errorf("%w: %q, must be one of DAILY, WEEKLY, MONTHLY, QUARTERLY", errs.ErrInvalidFrequency, value)
	}
	return frequency, nil
}

// IsValidStatus checks a status name against the lifecycle states
func IsValidStatus(status string) bool {
	switch TransactionStatus(status) {
	case StatusActive, StatusPaused, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}
