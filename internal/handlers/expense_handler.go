package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetsplit/internal/errors"
	"budgetsplit/internal/models"
	"budgetsplit/internal/pagination"
	"budgetsplit/internal/services"
)

// expenseDateLayout is the wire format for expense dates. Expenses carry a
// calendar date, not a timestamp.
const expenseDateLayout = "2006-01-02"

// ExpenseHandler handles expense ledger requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// AddExpenseRequest represents the request payload for recording an expense.
type AddExpenseRequest struct {
	Category    models.Category `json:"category" binding:"required,expense_category"`
	ItemName    string          `json:"item_name" binding:"required,min=1,max=255"`
	Amount      float64         `json:"amount" binding:"required,gt=0"`
	ExpenseDate string          `json:"expense_date" binding:"required"`
}

// AddExpense records one spending entry.
// @Summary     Add expense
// @Description Record a categorized expense for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	username, err := getUserKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expenseDate, err := time.ParseInLocation(expenseDateLayout, req.ExpenseDate, time.UTC)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense_date must be in YYYY-MM-DD format"))
		return
	}

	expense, err := h.expenseService.AddExpense(username, req.Category, req.ItemName, req.Amount, expenseDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(username, "ADD_EXPENSE", expense.ID, c.ClientIP(),
		map[string]interface{}{"category": req.Category, "amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// DeleteExpense removes one expense record.
// @Summary     Delete expense
// @Description Delete one expense record by ID; deleting a missing ID is a no-op
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	username, err := getUserKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(username, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(username, "DELETE_EXPENSE", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// ListForMonth returns the expenses of one calendar month.
// @Summary     List expenses for a month
// @Description List the authenticated user's expenses for one calendar month, most recent first
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int true "Calendar year"
// @Param       month query int true "Calendar month (1-12)"
// @Success     200 {array} models.Expense "Expenses for the month"
// @Failure     400 {object} ErrorResponse "Invalid year or month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/month [get]
func (h *ExpenseHandler) ListForMonth(c *gin.Context) {
	username, err := getUserKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.ListForMonth(username, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// ListHistory returns a paginated view over the full expense history.
// @Summary     List expense history
// @Description Get a paginated list of all expenses for the authenticated user, most recent first
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListHistory(c *gin.Context) {
	username, err := getUserKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.expenseService.ListHistory(username, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
