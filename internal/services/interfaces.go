package services

import (
	"time"

	"budgetsplit/internal/models"
	"budgetsplit/internal/pagination"
)

// UserServicer defines the contract for account and credential logic.
type UserServicer interface {
	CreateUser(countryCode, localNumber, email, password string) (*models.User, error)
	Login(countryCode, localNumber, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	FindByPhone(phone string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// GoalServicer defines the contract for the monthly income goal.
type GoalServicer interface {
	SetGoal(username string, monthlyIncome float64) error
	GetGoal(username string) (float64, error)
	ResetGoal(username string) error
}

// ExpenseServicer defines the contract for the expense ledger.
type ExpenseServicer interface {
	AddExpense(username string, category models.Category, itemName string, amount float64, expenseDate time.Time) (*models.Expense, error)
	DeleteExpense(username string, expenseID uint) error
	ListForMonth(username string, year, month int) ([]models.Expense, error)
	ListAll(username string) ([]models.Expense, error)
	ListHistory(username string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
}

// MonthlySummary contains the derived income/spending figures for one
// calendar month. Balance may be negative.
type MonthlySummary struct {
	Year      int              `json:"year"`
	Month     int              `json:"month"`
	Income    float64          `json:"income"`
	Allocated float64          `json:"allocated"`
	Balance   float64          `json:"balance"`
	Expenses  []models.Expense `json:"expenses"`
}

// TrendPoint is the total spent in one category during one calendar month.
type TrendPoint struct {
	Month    string          `json:"month"`
	Category models.Category `json:"category"`
	Total    float64         `json:"total"`
}

// SummaryServicer defines the contract for derived, stateless views over the
// goal and expense ledgers.
type SummaryServicer interface {
	MonthlySummary(username string, year, month int) (*MonthlySummary, error)
	Trend(username string) ([]TrendPoint, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(username, action string, resourceID uint, ipAddress string, details map[string]interface{})
}
