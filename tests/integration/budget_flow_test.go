package integration

import (
	"fmt"
	"net/http"
	"testing"
)

// TestBudgetFlow walks a user through a full month of budgeting: set an
// income goal, record expenses, read the month back, check the summary
// figures, and finally reset everything.
func TestBudgetFlow(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "9876500001", "budget@test.com", "password123")

	// Step 1: Set the monthly income goal
	rec := app.request("PUT", "/api/v1/goal", `{"monthly_income":30000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("set goal failed: %d %s", rec.Code, rec.Body.String())
	}

	// Step 2: Record two March expenses
	rec = app.request("POST", "/api/v1/expenses",
		`{"category":"Needs","item_name":"Rent","amount":10000,"expense_date":"2024-03-01"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add Rent failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/expenses",
		`{"category":"Wants","item_name":"Movie","amount":500,"expense_date":"2024-03-15"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add Movie failed: %d %s", rec.Code, rec.Body.String())
	}

	// Step 3: List March expenses, most recent first
	rec = app.request("GET", "/api/v1/expenses/month?year=2024&month=3", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list month failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	expenses := result["expenses"].([]interface{})
	if len(expenses) != 2 {
		t.Fatalf("expected 2 March expenses, got %d", len(expenses))
	}
	first := expenses[0].(map[string]interface{})
	if first["item_name"] != "Movie" {
		t.Errorf("expected Movie first (most recent date), got %v", first["item_name"])
	}

	// Step 4: Monthly summary reflects goal and spending
	rec = app.request("GET", "/api/v1/summary/month?year=2024&month=3", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["income"].(float64) != 30000 {
		t.Errorf("expected income 30000, got %v", summary["income"])
	}
	if summary["allocated"].(float64) != 10500 {
		t.Errorf("expected allocated 10500, got %v", summary["allocated"])
	}
	if summary["balance"].(float64) != 19500 {
		t.Errorf("expected balance 19500, got %v", summary["balance"])
	}

	// Step 5: Reset the budget
	rec = app.request("DELETE", "/api/v1/goal", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("reset failed: %d %s", rec.Code, rec.Body.String())
	}

	// Goal reads as zero, expense history is empty
	rec = app.request("GET", "/api/v1/goal", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get goal failed: %d %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["monthly_income"].(float64) != 0 {
		t.Error("expected goal to read as 0 after reset")
	}

	rec = app.request("GET", "/api/v1/expenses/month?year=2024&month=3", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list month after reset failed: %d %s", rec.Code, rec.Body.String())
	}
	if len(parseJSON(t, rec)["expenses"].([]interface{})) != 0 {
		t.Error("expected no expenses after reset")
	}
}

func TestBudgetFlow_GoalUpsert(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "9876500002", "upsert@test.com", "password123")

	rec := app.request("PUT", "/api/v1/goal", `{"monthly_income":5000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("first set goal failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("PUT", "/api/v1/goal", `{"monthly_income":7000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("second set goal failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/goal", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get goal failed: %d %s", rec.Code, rec.Body.String())
	}
	if got := parseJSON(t, rec)["monthly_income"].(float64); got != 7000 {
		t.Errorf("expected goal 7000 after overwrite, got %v", got)
	}
}

func TestBudgetFlow_DeleteExpense(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "9876500003", "delete@test.com", "password123")

	rec := app.request("POST", "/api/v1/expenses",
		`{"category":"Others","item_name":"Mistake","amount":99,"expense_date":"2024-03-10"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add expense failed: %d %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	id := expense["id"].(float64)

	rec = app.request("DELETE", fmt.Sprintf("/api/v1/expenses/%.0f", id), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	// Deleting the same id again is a no-op, not an error
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/expenses/%.0f", id), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("second delete should be a no-op, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/expenses/month?year=2024&month=3", "", token)
	if len(parseJSON(t, rec)["expenses"].([]interface{})) != 0 {
		t.Error("expected expense to be gone")
	}
}

func TestBudgetFlow_UsersAreIsolated(t *testing.T) {
	app := setupApp(t)

	aliceToken, _ := app.registerUser(t, "9876500004", "alice@test.com", "password123")
	bobToken, _ := app.registerUser(t, "9876500005", "bob@test.com", "password123")

	rec := app.request("PUT", "/api/v1/goal", `{"monthly_income":30000}`, aliceToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("alice set goal failed: %d", rec.Code)
	}
	rec = app.request("POST", "/api/v1/expenses",
		`{"category":"Needs","item_name":"Rent","amount":10000,"expense_date":"2024-03-01"}`, aliceToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("alice add expense failed: %d", rec.Code)
	}

	// Bob sees none of alice's data
	rec = app.request("GET", "/api/v1/goal", "", bobToken)
	if parseJSON(t, rec)["monthly_income"].(float64) != 0 {
		t.Error("expected bob to have no goal")
	}
	rec = app.request("GET", "/api/v1/expenses/month?year=2024&month=3", "", bobToken)
	if len(parseJSON(t, rec)["expenses"].([]interface{})) != 0 {
		t.Error("expected bob to have no expenses")
	}
}

func TestBudgetFlow_Trend(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "9876500006", "trend@test.com", "password123")

	for _, e := range []string{
		`{"category":"Needs","item_name":"Rent","amount":10000,"expense_date":"2024-02-01"}`,
		`{"category":"Needs","item_name":"Rent","amount":10000,"expense_date":"2024-03-01"}`,
		`{"category":"Wants","item_name":"Movie","amount":500,"expense_date":"2024-03-15"}`,
	} {
		rec := app.request("POST", "/api/v1/expenses", e, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("add expense failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	rec := app.request("GET", "/api/v1/summary/trend", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("trend failed: %d %s", rec.Code, rec.Body.String())
	}
	trend := parseJSON(t, rec)["trend"].([]interface{})
	if len(trend) != 3 {
		t.Fatalf("expected 3 trend points, got %d", len(trend))
	}
	first := trend[0].(map[string]interface{})
	if first["month"] != "2024-02" {
		t.Errorf("expected earliest month first, got %v", first["month"])
	}
	if first["total"].(float64) != 10000 {
		t.Errorf("expected total 10000, got %v", first["total"])
	}
}

func TestBudgetFlow_ExpenseHistoryPagination(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "9876500007", "history@test.com", "password123")

	for day := 1; day <= 5; day++ {
		body := fmt.Sprintf(`{"category":"Needs","item_name":"Item %d","amount":100,"expense_date":"2024-03-%02d"}`, day, day)
		rec := app.request("POST", "/api/v1/expenses", body, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("add expense failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	rec := app.request("GET", "/api/v1/expenses?page=1&page_size=2", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("history failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 5 {
		t.Errorf("expected 5 total items, got %v", result["total_items"])
	}
	data := result["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 2 items on page, got %d", len(data))
	}
	first := data[0].(map[string]interface{})
	if first["item_name"] != "Item 5" {
		t.Errorf("expected most recent expense first, got %v", first["item_name"])
	}
}
