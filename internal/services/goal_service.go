package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "budgetsplit/internal/errors"
	"budgetsplit/internal/models"
)

// goalService owns the one-row-per-user monthly income goal.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// SetGoal inserts or overwrites the user's monthly income in a single upsert
// statement, so a concurrent reader never observes a missing or duplicated row.
func (s *goalService) SetGoal(username string, monthlyIncome float64) error {
	if username == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "username is required")
	}
	if monthlyIncome < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly income cannot be negative")
	}

	goal := &models.Goal{Username: username, MonthlyIncome: monthlyIncome}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"monthly_income", "updated_at"}),
	}).Create(goal).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetGoal returns the user's monthly income, or 0 when no goal has been set.
// Zero is the sentinel for "onboarding not complete", not a real goal value.
func (s *goalService) GetGoal(username string) (float64, error) {
	var goal models.Goal
	if err := s.db.Where("username = ?", username).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal.MonthlyIncome, nil
}

// ResetGoal deletes the goal row and every expense owned by the user inside
// one transaction. Resetting a user with no goal is a no-op.
func (s *goalService) ResetGoal(username string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", username).Delete(&models.Goal{}).Error; err != nil {
			return err
		}
		return tx.Where("username = ?", username).Delete(&models.Expense{}).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
