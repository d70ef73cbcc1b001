package models

import (
	"time"

	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryTotal is the summed expense amount for one category within a
// requested window.
type CategoryTotal struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total" example:"231.87"`
}

// CategoryBreakdown sums all expense transactions of the user in the
// half-open window [from, until), grouped by category and ordered by
// total descending. Categories without matching transactions are not
// part of the result.
func CategoryBreakdown(db *gorm.DB, userID uuid.UUID, from, until time.Time) ([]CategoryTotal, error) {
	var rows []struct {
		CategoryID uuid.UUID
		Total      decimal.Decimal
	}

	err := db.Table("transactions").
		Select("category_id, SUM(amount) AS total").
		Where("user_id = ?", userID).
		Where("type = ?", TransactionTypeExpense).
		Where("deleted_at IS NULL").
		Where("datetime(date) >= datetime(?) AND datetime(date) < datetime(?)", from, until).
		Group("category_id").
		Order("total DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	breakdown := make([]CategoryTotal, 0, len(rows))
	for _, row := range rows {
		var category Category
		err := db.First(&category, "id = ?", row.CategoryID).Error
		if err != nil {
			return nil, err
		}

		breakdown = append(breakdown, CategoryTotal{
			Category: category,
			Total:    row.Total,
		})
	}

	return breakdown, nil
}

// Overview is the headline summary for the dashboard.
type Overview struct {
	TotalBalance    decimal.Decimal `json:"totalBalance" example:"23414.5"`   // Starting balance plus lifetime income minus lifetime expenses
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome" example:"2500"`     // Income sum for the current calendar month
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses" example:"85.5"`   // Expense sum for the current calendar month
}

// Overview computes the dashboard summary for the user as of the given
// time. All sums are recomputed from the ledger on every call.
func (u User) Overview(db *gorm.DB, asOf time.Time) (Overview, error) {
	var zero time.Time

	income, err := transactionSum(db, u.ID, TransactionTypeIncome, zero, zero)
	if err != nil {
		return Overview{}, err
	}

	expenses, err := transactionSum(db, u.ID, TransactionTypeExpense, zero, zero)
	if err != nil {
		return Overview{}, err
	}

	month := types.MonthOf(asOf.In(time.UTC))
	from := time.Time(month)
	until := time.Time(month.AddDate(0, 1))

	monthlyIncome, err := transactionSum(db, u.ID, TransactionTypeIncome, from, until)
	if err != nil {
		return Overview{}, err
	}

	monthlyExpenses, err := transactionSum(db, u.ID, TransactionTypeExpense, from, until)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		TotalBalance:    u.StartingBalance.Add(income).Sub(expenses),
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
	}, nil
}

// transactionSum returns the sum of all transactions of one type for
// the user. A zero from or until leaves that side of the window open.
func transactionSum(db *gorm.DB, userID uuid.UUID, t TransactionType, from, until time.Time) (decimal.Decimal, error) {
	q := db.Table("transactions").
		Select("SUM(amount)").
		Where("user_id = ?", userID).
		Where("type = ?", t).
		Where("deleted_at IS NULL")

	if !from.IsZero() {
		q = q.Where("datetime(date) >= datetime(?)", from)
	}

	if !until.IsZero() {
		q = q.Where("datetime(date) < datetime(?)", until)
	}

	var sum decimal.NullDecimal
	err := q.Row().Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is NULL
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// DeleteUserData permanently removes all resources belonging to the
// user in a single transaction. The user itself is kept.
func DeleteUserData(db *gorm.DB, userID uuid.UUID) error {
	// Add new models *before* any of the models they reference
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{Budget{}, Transaction{}, Category{}} {
			err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
