package models

import "time"

// Goal holds a user's declared monthly income. At most one row exists per
// user; writes go through an upsert keyed on Username.
//
// Username holds the email of the owning user. The column name is kept for
// compatibility with the historical schema.
type Goal struct {
	Username      string    `gorm:"primaryKey;size:255" json:"username"`
	MonthlyIncome float64   `gorm:"type:decimal(15,2);not null" json:"monthly_income"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName keeps the historical table name.
func (Goal) TableName() string {
	return "budget_goals"
}
