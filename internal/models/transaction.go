package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType determines the sign a transaction contributes with
// when aggregated: income adds, expense subtracts.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single dated entry in a user's ledger.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId" gorm:"index:idx_transactions_user_date,priority:1;index:idx_transactions_user_category,priority:1"`
	Type        TransactionType `json:"type" example:"expense"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.37"` // Always positive, the type determines the sign
	Description string          `json:"description" example:"Groceries for the week"`
	CategoryID  uuid.UUID       `json:"categoryId" gorm:"index:idx_transactions_user_category,priority:2"`
	Category    Category        `json:"-"`
	Date        time.Time       `json:"date" gorm:"index:idx_transactions_user_date,priority:2"` // Time of day is only used for sorting
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - trims whitespace from the description
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterSave verifies the amount and type. This runs after the update
// values have been merged so that partial updates are checked, too.
func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrTransactionAmountNotPositive
	}

	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return ErrTransactionTypeInvalid
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) (err error) {
	if tx.Statement.Changed("CategoryID") {
		toSave := tx.Statement.Dest.(Transaction)
		toSave.UserID = t.UserID

		err = t.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the category exists and belongs to the
// same user as the transaction.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	return tx.First(&Category{}, "id = ? AND user_id = ?", toSave.CategoryID, toSave.UserID).Error
}

// RecentTransactions returns the n newest transactions for a user,
// ordered by date descending with creation time as tie-breaker.
func RecentTransactions(db *gorm.DB, userID uuid.UUID, n int) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where(&Transaction{UserID: userID}).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Limit(n).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
