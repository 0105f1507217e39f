package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgetsplit/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// UniqueUsername returns an email-shaped user key unused by other fixtures.
func UniqueUsername() string {
	return fmt.Sprintf("user%d@test.com", nextID())
}

// CreateTestUser creates a user with a hashed password and unique phone/email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithPhone(t, db, fmt.Sprintf("+91%010d", n), fmt.Sprintf("user%d@test.com", n))
}

// CreateTestUserWithPhone creates a user with the given phone and email.
func CreateTestUserWithPhone(t *testing.T, db *gorm.DB, phone, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestGoal creates a goal row for the given user key.
func CreateTestGoal(t *testing.T, db *gorm.DB, username string, monthlyIncome float64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Username:      username,
		MonthlyIncome: monthlyIncome,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestExpense creates an expense dated on the given day.
func CreateTestExpense(t *testing.T, db *gorm.DB, username string, category models.Category, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Username:    username,
		Category:    category,
		ItemName:    fmt.Sprintf("Test Item %d", nextID()),
		Amount:      amount,
		ExpenseDate: date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// Date builds a UTC calendar date, the shape expense_date is stored in.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
