package models

import (
	"time"

	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the recurrence of a budget. Only monthly budgets are
// supported, the type exists so that the period is explicit in storage
// and on the wire.
type BudgetPeriod string

const BudgetPeriodMonthly BudgetPeriod = "monthly"

// Budget is a spending cap for one category. The spent amount is never
// stored, it is recomputed from the transaction ledger on every read so
// that it cannot drift from the ledger.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" gorm:"uniqueIndex:budget_user_category_period"`
	CategoryID uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:budget_user_category_period"`
	Category   Category        `json:"-"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1000"` // The spending cap for one period
	Period     BudgetPeriod    `json:"period" gorm:"uniqueIndex:budget_user_category_period" example:"monthly"`
	StartDate  time.Time       `json:"startDate"`
}

// BeforeSave defaults the period and start date.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Period == "" {
		b.Period = BudgetPeriodMonthly
	}

	if b.StartDate.IsZero() {
		b.StartDate = time.Now().In(time.UTC)
	} else {
		b.StartDate = b.StartDate.In(time.UTC)
	}

	return nil
}

// AfterSave verifies the amount and period. This runs after the update
// values have been merged so that partial updates are checked, too.
func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(b.Amount) {
		return ErrBudgetAmountNotPositive
	}

	if b.Period != BudgetPeriodMonthly {
		return ErrBudgetPeriodInvalid
	}

	return nil
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Budget)
	return b.checkIntegrity(tx, *toSave)
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) (err error) {
	if tx.Statement.Changed("CategoryID") {
		toSave := tx.Statement.Dest.(Budget)
		toSave.UserID = b.UserID

		err = b.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the category exists and belongs to the
// same user as the budget.
func (b *Budget) checkIntegrity(tx *gorm.DB, toSave Budget) error {
	return tx.First(&Category{}, "id = ? AND user_id = ?", toSave.CategoryID, toSave.UserID).Error
}

// Spent returns the sum of all expense transactions for the budget's
// category within the month.
func (b Budget) Spent(db *gorm.DB, month types.Month) (decimal.Decimal, error) {
	var spent decimal.NullDecimal

	err := db.Table("transactions").
		Select("SUM(amount)").
		Where("user_id = ?", b.UserID).
		Where("category_id = ?", b.CategoryID).
		Where("type = ?", TransactionTypeExpense).
		Where("deleted_at IS NULL").
		Where("datetime(date) >= datetime(?) AND datetime(date) < datetime(?)", month, month.AddDate(0, 1)).
		Row().
		Scan(&spent)
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is NULL
	if !spent.Valid {
		return decimal.Zero, nil
	}

	return spent.Decimal, nil
}

// BudgetStatus is the live view of a budget for one period window.
//
// PercentageSpent is intentionally not capped at 100: values above 100
// together with a negative Remaining signal an over-budget state.
type BudgetStatus struct {
	Amount          decimal.Decimal `json:"amount" example:"1000"`
	Spent           decimal.Decimal `json:"spent" example:"850"`
	Remaining       decimal.Decimal `json:"remaining" example:"150"`
	PercentageSpent int64           `json:"percentageSpent" example:"85"`
}

// Status computes the budget status for the period window containing
// asOf, which for monthly budgets is the calendar month of asOf.
func (b Budget) Status(db *gorm.DB, asOf time.Time) (BudgetStatus, error) {
	spent, err := b.Spent(db, types.MonthOf(asOf.In(time.UTC)))
	if err != nil {
		return BudgetStatus{}, err
	}

	status := BudgetStatus{
		Amount:    b.Amount,
		Spent:     spent,
		Remaining: b.Amount.Sub(spent),
	}

	if b.Amount.IsPositive() {
		status.PercentageSpent = spent.Div(b.Amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}

	return status, nil
}
