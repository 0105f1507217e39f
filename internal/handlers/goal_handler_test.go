package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"budgetsplit/internal/services"
)

// --- mock goal service ---

type mockGoalService struct {
	setGoalFn   func(username string, monthlyIncome float64) error
	getGoalFn   func(username string) (float64, error)
	resetGoalFn func(username string) error
}

func (m *mockGoalService) SetGoal(username string, monthlyIncome float64) error {
	if m.setGoalFn != nil {
		return m.setGoalFn(username, monthlyIncome)
	}
	return nil
}

func (m *mockGoalService) GetGoal(username string) (float64, error) {
	if m.getGoalFn != nil {
		return m.getGoalFn(username)
	}
	return 0, nil
}

func (m *mockGoalService) ResetGoal(username string) error {
	if m.resetGoalFn != nil {
		return m.resetGoalFn(username)
	}
	return nil
}

var _ services.GoalServicer = (*mockGoalService)(nil)

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUser(1, "test@example.com"))
	auth.PUT("/goal", handler.SetGoal)
	auth.GET("/goal", handler.GetGoal)
	auth.DELETE("/goal", handler.ResetGoal)
	return r
}

func TestGoalHandler_SetGoal(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotUser string
		var gotIncome float64
		svc := &mockGoalService{
			setGoalFn: func(username string, monthlyIncome float64) error {
				gotUser = username
				gotIncome = monthlyIncome
				return nil
			},
		}
		handler := NewGoalHandler(svc, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "PUT", "/goal", `{"monthly_income":30000}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUser != "test@example.com" {
			t.Errorf("expected username test@example.com, got %q", gotUser)
		}
		if gotIncome != 30000 {
			t.Errorf("expected income 30000, got %.2f", gotIncome)
		}
	})

	t.Run("accepts zero income", func(t *testing.T) {
		handler := NewGoalHandler(&mockGoalService{}, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "PUT", "/goal", `{"monthly_income":0}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on negative income", func(t *testing.T) {
		handler := NewGoalHandler(&mockGoalService{}, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "PUT", "/goal", `{"monthly_income":-100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing income", func(t *testing.T) {
		handler := NewGoalHandler(&mockGoalService{}, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "PUT", "/goal", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGoalHandler_GetGoal(t *testing.T) {
	t.Run("returns current goal", func(t *testing.T) {
		svc := &mockGoalService{
			getGoalFn: func(_ string) (float64, error) {
				return 30000, nil
			},
		}
		handler := NewGoalHandler(svc, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "GET", "/goal", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["monthly_income"].(float64) != 30000 {
			t.Errorf("expected monthly_income 30000, got %v", result["monthly_income"])
		}
	})

	t.Run("returns zero when no goal set", func(t *testing.T) {
		handler := NewGoalHandler(&mockGoalService{}, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "GET", "/goal", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["monthly_income"].(float64) != 0 {
			t.Errorf("expected monthly_income 0, got %v", result["monthly_income"])
		}
	})
}

func TestGoalHandler_ResetGoal(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotUser string
		svc := &mockGoalService{
			resetGoalFn: func(username string) error {
				gotUser = username
				return nil
			},
		}
		handler := NewGoalHandler(svc, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "DELETE", "/goal", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUser != "test@example.com" {
			t.Errorf("expected username test@example.com, got %q", gotUser)
		}
	})

	t.Run("returns 500 when service fails", func(t *testing.T) {
		svc := &mockGoalService{
			resetGoalFn: func(_ string) error {
				return fmt.Errorf("db connection lost")
			},
		}
		handler := NewGoalHandler(svc, &mockAuditService{})
		r := setupGoalRouter(handler)

		rec := doRequest(r, "DELETE", "/goal", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
