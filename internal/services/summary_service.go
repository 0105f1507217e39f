package services

import (
	"fmt"
	"sort"

	"budgetsplit/internal/models"
)

// summaryService derives display figures from the goal and expense ledgers.
// It owns no state of its own; every call re-reads the store.
type summaryService struct {
	goals    GoalServicer
	expenses ExpenseServicer
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(goals GoalServicer, expenses ExpenseServicer) SummaryServicer {
	return &summaryService{goals: goals, expenses: expenses}
}

// Allocated sums the amounts of the given expenses.
func Allocated(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// Balance is the income minus the allocated total. A negative balance is a
// valid, displayable state.
func Balance(income float64, expenses []models.Expense) float64 {
	return income - Allocated(expenses)
}

// MonthlySummary returns the income, allocated total, balance, and expense
// list for one calendar month.
func (s *summaryService) MonthlySummary(username string, year, month int) (*MonthlySummary, error) {
	income, err := s.goals.GetGoal(username)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.ListForMonth(username, year, month)
	if err != nil {
		return nil, err
	}

	return &MonthlySummary{
		Year:      year,
		Month:     month,
		Income:    income,
		Allocated: Allocated(expenses),
		Balance:   Balance(income, expenses),
		Expenses:  expenses,
	}, nil
}

// Trend groups the user's full expense history into per-month, per-category
// totals. The grouping month comes from the expense date, never the insertion
// time. Results are ordered by month, then by the fixed category order.
func (s *summaryService) Trend(username string) ([]TrendPoint, error) {
	expenses, err := s.expenses.ListAll(username)
	if err != nil {
		return nil, err
	}

	type key struct {
		month    string
		category models.Category
	}
	totals := make(map[key]float64)
	for _, e := range expenses {
		k := key{
			month:    fmt.Sprintf("%04d-%02d", e.ExpenseDate.Year(), int(e.ExpenseDate.Month())),
			category: e.Category,
		}
		totals[k] += e.Amount
	}

	categoryOrder := make(map[models.Category]int, len(models.Categories()))
	for i, c := range models.Categories() {
		categoryOrder[c] = i
	}

	points := make([]TrendPoint, 0, len(totals))
	for k, total := range totals {
		points = append(points, TrendPoint{Month: k.month, Category: k.category, Total: total})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Month != points[j].Month {
			return points[i].Month < points[j].Month
		}
		return categoryOrder[points[i].Category] < categoryOrder[points[j].Category]
	})

	return points, nil
}
