package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "budgetsplit/internal/errors"
	"budgetsplit/internal/logger"
	"budgetsplit/internal/models"
	"budgetsplit/internal/pagination"
)

// expenseService owns the categorized, dated expense records.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// AddExpense validates and persists one spending record. The expense date is
// not constrained to any month; a record dated outside the currently viewed
// month simply appears under its own month on later queries.
func (s *expenseService) AddExpense(username string, category models.Category, itemName string, amount float64, expenseDate time.Time) (*models.Expense, error) {
	if username == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username is required")
	}
	if strings.TrimSpace(itemName) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "item name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than 0")
	}
	if !models.ValidCategory(category) {
		return nil, apperrors.ErrUnknownCategory
	}

	expense := &models.Expense{
		Username:    username,
		Category:    category,
		ItemName:    strings.TrimSpace(itemName),
		Amount:      amount,
		ExpenseDate: expenseDate,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// DeleteExpense removes one record by id, scoped to the owning user.
// Deleting an id that no longer exists is a no-op, not an error.
func (s *expenseService) DeleteExpense(username string, expenseID uint) error {
	res := s.db.Where("id = ? AND username = ?", expenseID, username).Delete(&models.Expense{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		logger.Get().Debugw("delete of missing expense ignored", "expense_id", expenseID)
	}
	return nil
}

// ListForMonth returns the user's expenses whose expense_date falls in the
// given calendar month, most recent date first, ties broken by id descending.
func (s *expenseService) ListForMonth(username string, year, month int) ([]models.Expense, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	expenses := []models.Expense{}
	err := s.db.
		Where("username = ? AND expense_date >= ? AND expense_date < ?", username, start, end).
		Order("expense_date DESC, id DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// ListAll returns every expense of the user ordered by date ascending. This
// feeds the trend aggregation.
func (s *expenseService) ListAll(username string) ([]models.Expense, error) {
	expenses := []models.Expense{}
	err := s.db.
		Where("username = ?", username).
		Order("expense_date ASC, id ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// ListHistory returns a page of the user's expenses, most recent first.
func (s *expenseService) ListHistory(username string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("username = ?", username)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	err := base.
		Order("expense_date DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}
