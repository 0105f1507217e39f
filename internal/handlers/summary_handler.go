package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetsplit/internal/services"
)

// SummaryHandler handles derived budget view requests.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// MonthlySummary returns income, allocated total, balance, and the expense
// list for one calendar month.
// @Summary     Get monthly summary
// @Description Get income, allocated total, remaining balance, and expenses for one calendar month
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int true "Calendar year"
// @Param       month query int true "Calendar month (1-12)"
// @Success     200 {object} services.MonthlySummary "Monthly summary"
// @Failure     400 {object} ErrorResponse "Invalid year or month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/month [get]
func (h *SummaryHandler) MonthlySummary(c *gin.Context) {
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

	summary, err := h.summaryService.MonthlySummary(username, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// Trend returns per-month, per-category spending totals over the full history.
// @Summary     Get spending trend
// @Description Get per-month, per-category spending totals across the full expense history
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.TrendPoint "Trend points ordered by month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/trend [get]
func (h *SummaryHandler) Trend(c *gin.Context) {
	username, err := getUserKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := h.summaryService.Trend(username)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": points})
}
