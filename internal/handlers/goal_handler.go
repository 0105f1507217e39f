package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetsplit/internal/errors"
	"budgetsplit/internal/services"
)

// GoalHandler handles monthly income goal requests.
type GoalHandler struct {
	goalService  services.GoalServicer
	auditService services.AuditServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer, auditService services.AuditServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService, auditService: auditService}
}

// SetGoalRequest represents the request payload for setting the income goal.
type SetGoalRequest struct {
	MonthlyIncome *float64 `json:"monthly_income" binding:"required,gte=0"`
}

// GoalResponse represents the monthly income goal in responses.
type GoalResponse struct {
	MonthlyIncome float64 `json:"monthly_income"`
}

// SetGoal creates or overwrites the user's monthly income goal.
// @Summary     Set income goal
// @Description Create or overwrite the authenticated user's monthly income goal
// @Tags        goal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetGoalRequest true "Monthly income"
// @Success     200 {object} GoalResponse "Goal saved"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goal [put]
func (h *GoalHandler) SetGoal(c *gin.Context) {
	username, err := getUserKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.goalService.SetGoal(username, *req.MonthlyIncome); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(username, "SET_GOAL", 0, c.ClientIP(),
		map[string]interface{}{"monthly_income": *req.MonthlyIncome})

	c.JSON(http.StatusOK, gin.H{"monthly_income": *req.MonthlyIncome})
}

// GetGoal returns the user's monthly income goal.
// @Summary     Get income goal
// @Description Get the authenticated user's monthly income goal; 0 means no goal set
// @Tags        goal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} GoalResponse "Current goal"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goal [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	username, err := getUserKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.goalService.GetGoal(username)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"monthly_income": income})
}

// ResetGoal deletes the user's goal and all of their expenses.
// @Summary     Reset budget data
// @Description Delete the authenticated user's income goal and every expense record
// @Tags        goal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Budget data reset"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goal [delete]
func (h *GoalHandler) ResetGoal(c *gin.Context) {
	username, err := getUserKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.ResetGoal(username); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(username, "RESET_GOAL", 0, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Budget data reset successfully"})
}
