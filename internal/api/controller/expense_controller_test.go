package controller_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ogckw/my-expense-app/internal/api"
	"github.com/ogckw/my-expense-app/internal/api/controller"
	"github.com/ogckw/my-expense-app/internal/model"
	"github.com/ogckw/my-expense-app/internal/repository"
	"github.com/ogckw/my-expense-app/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryExpenseRepo()
	svc := service.NewExpenseService(repo)
	r := gin.New()
	api.RegisterRoutes(r, controller.NewExpenseController(svc))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func expenseBody(title string, amount float64, date, category string) string {
	return fmt.Sprintf(`{"title":%q,"amount":%v,"date":%q,"category":%q}`, title, amount, date, category)
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func createExpense(t *testing.T, r *gin.Engine, title string, amount float64, date, category string) model.Expense {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/expenses", expenseBody(title, amount, date, category))
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /expenses status = %d, body = %s", w.Code, w.Body.String())
	}
	var created model.Expense
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad create response: %v", err)
	}
	return created
}

func TestCreateExpense(t *testing.T) {
	r := newTestRouter()

	created := createExpense(t, r, "Lunch", 50, today(), "食")
	if created.ID.IsZero() {
		t.Error("created record has no id")
	}
	if created.Title != "Lunch" || created.Amount != 50 || created.Category != "食" {
		t.Errorf("created record = %+v", created)
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name     string
		body     string
		wantText string
	}{
		{
			name:     "negative amount",
			body:     expenseBody("Lunch", -50, today(), "食"),
			wantText: "Amount cannot be negative.",
		},
		{
			name:     "invalid category",
			body:     expenseBody("Lunch", 50, today(), "其他"),
			wantText: "Invalid category.",
		},
		{
			// 空串也要走分类规则，不能被绑定层截胡
			name:     "empty category",
			body:     expenseBody("Lunch", 50, today(), ""),
			wantText: "Invalid category.",
		},
		{
			name:     "empty date",
			body:     expenseBody("Lunch", 50, "", "食"),
			wantText: "Invalid date format.",
		},
		{
			name:     "date more than a year ago",
			body:     expenseBody("Lunch", 50, time.Now().AddDate(0, 0, -366).Format("2006-01-02"), "食"),
			wantText: "Date cannot be more than 1 year ago.",
		},
		{
			name:     "date in the future",
			body:     expenseBody("Lunch", 50, time.Now().AddDate(0, 0, 1).Format("2006-01-02"), "食"),
			wantText: "Date cannot be in the future.",
		},
		{
			name:     "unparseable date",
			body:     expenseBody("Lunch", 50, "soon", "食"),
			wantText: "Invalid date format.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/expenses", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			// 错误信息是纯文本契约，逐字比对
			if w.Body.String() != tt.wantText {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantText)
			}
		})
	}
}

func TestCreateExpenseMalformedBody(t *testing.T) {
	r := newTestRouter()
	w := doRequest(r, http.MethodPost, "/expenses", `{"title":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestListExpenses(t *testing.T) {
	r := newTestRouter()
	createExpense(t, r, "Lunch", 50, today(), "食")

	w := doRequest(r, http.MethodGet, "/expenses", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var got []model.Expense
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad list response: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("list length = %d, want 1", len(got))
	}
}

func TestListExpensesByTitle(t *testing.T) {
	r := newTestRouter()
	createExpense(t, r, "Lunch", 50, today(), "食")
	createExpense(t, r, "Dinner", 70, today(), "食")

	w := doRequest(r, http.MethodGet, "/expenses?title=Lun", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var got []model.Expense
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad list response: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Lunch" {
		t.Errorf("fuzzy search result = %v, want only Lunch", got)
	}
}

func TestListExpensesRangeRules(t *testing.T) {
	r := newTestRouter()

	tooWideStart := time.Now().AddDate(0, 0, -31).Format("2006-01-02")
	okStart := time.Now().AddDate(0, 0, -30).Format("2006-01-02")

	tests := []struct {
		name     string
		query    string
		wantCode int
		wantText string
	}{
		{
			name:     "startDate alone",
			query:    "?startDate=2026-01-01",
			wantCode: http.StatusBadRequest,
			wantText: "Both startDate and endDate are required for date range search.",
		},
		{
			name:     "endDate alone",
			query:    "?endDate=2026-01-01",
			wantCode: http.StatusBadRequest,
			wantText: "Both startDate and endDate are required for date range search.",
		},
		{
			name:     "inverted",
			query:    "?startDate=2026-01-02&endDate=2026-01-01",
			wantCode: http.StatusBadRequest,
			wantText: "startDate cannot be later than endDate.",
		},
		{
			name:     "31 days wide",
			query:    "?startDate=" + tooWideStart + "&endDate=" + today(),
			wantCode: http.StatusBadRequest,
			wantText: "Date range cannot exceed 30 days.",
		},
		{
			name:     "30 days wide is fine",
			query:    "?startDate=" + okStart + "&endDate=" + today(),
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/expenses"+tt.query, "")
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantText != "" && w.Body.String() != tt.wantText {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantText)
			}
		})
	}
}

func TestGetExpenseByID(t *testing.T) {
	r := newTestRouter()
	created := createExpense(t, r, "Lunch", 50, today(), "食")

	w := doRequest(r, http.MethodGet, "/expenses/"+created.ID.Hex(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var got model.Expense
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if got.ID != created.ID || got.Title != created.Title {
		t.Errorf("got %+v, want the created record", got)
	}
}

func TestGetExpenseNotFound(t *testing.T) {
	r := newTestRouter()

	for _, id := range []string{primitive.NewObjectID().Hex(), "not-an-objectid"} {
		w := doRequest(r, http.MethodGet, "/expenses/"+id, "")
		if w.Code != http.StatusNotFound {
			t.Errorf("GET /expenses/%s status = %d, want 404", id, w.Code)
		}
		if w.Body.String() != "Expense not found." {
			t.Errorf("body = %q, want %q", w.Body.String(), "Expense not found.")
		}
	}
}

func TestUpdateExpense(t *testing.T) {
	r := newTestRouter()
	created := createExpense(t, r, "Lunch", 50, today(), "食")

	w := doRequest(r, http.MethodPut, "/expenses/"+created.ID.Hex(), expenseBody("Taxi", 120, today(), "行"))
	if w.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body = %s", w.Code, w.Body.String())
	}
	var updated model.Expense
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if updated.Title != "Taxi" || updated.Amount != 120 || updated.Category != "行" {
		t.Errorf("updated = %+v, want all four fields replaced", updated)
	}

	// 再读一次确认是新值
	w = doRequest(r, http.MethodGet, "/expenses/"+created.ID.Hex(), "")
	var got model.Expense
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if got.Title != "Taxi" {
		t.Errorf("after update got %+v, old values survived", got)
	}
}

func TestUpdateExpenseErrors(t *testing.T) {
	r := newTestRouter()
	created := createExpense(t, r, "Lunch", 50, today(), "食")

	w := doRequest(r, http.MethodPut, "/expenses/"+primitive.NewObjectID().Hex(), expenseBody("Taxi", 120, today(), "行"))
	if w.Code != http.StatusNotFound {
		t.Errorf("PUT on absent id status = %d, want 404", w.Code)
	}

	w = doRequest(r, http.MethodPut, "/expenses/"+created.ID.Hex(), expenseBody("Taxi", -1, today(), "行"))
	if w.Code != http.StatusBadRequest || w.Body.String() != "Amount cannot be negative." {
		t.Errorf("PUT with negative amount: status = %d, body = %q", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodPut, "/expenses/"+created.ID.Hex(), expenseBody("Taxi", 120, today(), ""))
	if w.Code != http.StatusBadRequest || w.Body.String() != "Invalid category." {
		t.Errorf("PUT with empty category: status = %d, body = %q", w.Code, w.Body.String())
	}
}

func TestDeleteExpense(t *testing.T) {
	r := newTestRouter()
	created := createExpense(t, r, "Lunch", 50, today(), "食")

	w := doRequest(r, http.MethodDelete, "/expenses/"+created.ID.Hex(), "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("DELETE body = %q, want empty", w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/expenses/"+created.ID.Hex(), "")
	if w.Code != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want 404", w.Code)
	}

	w = doRequest(r, http.MethodDelete, "/expenses/"+created.ID.Hex(), "")
	if w.Code != http.StatusNotFound {
		t.Errorf("second DELETE status = %d, want 404", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()
	w := doRequest(r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("GET /health status = %d, want 200", w.Code)
	}
}
