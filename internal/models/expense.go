package models

import "time"

// Category is one of the five fixed expense buckets.
type Category string

const (
	CategoryNeeds      Category = "Needs"
	CategoryWants      Category = "Wants"
	CategoryCulture    Category = "Culture"
	CategoryUnexpected Category = "Unexpected"
	CategoryOthers     Category = "Others"
)

// Categories returns the fixed set of expense categories in display order.
func Categories() []Category {
	return []Category{
		CategoryNeeds,
		CategoryWants,
		CategoryCulture,
		CategoryUnexpected,
		CategoryOthers,
	}
}

// ValidCategory reports whether c is one of the five fixed categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryNeeds, CategoryWants, CategoryCulture, CategoryUnexpected, CategoryOthers:
		return true
	}
	return false
}

// Expense is a single dated, categorized spending record. ExpenseDate decides
// which month's ledger the record belongs to; CreatedAt is informational only.
// Expenses are never edited in place, only deleted and re-added.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"size:255;index;not null" json:"username"`
	Category    Category  `gorm:"size:50;not null" json:"category"`
	ItemName    string    `gorm:"size:255;not null" json:"item_name"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	ExpenseDate time.Time `gorm:"type:date;index;not null" json:"expense_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName keeps the historical table name.
func (Expense) TableName() string {
	return "budget_expenses"
}
