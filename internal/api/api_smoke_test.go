package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alencengic/modest-insights/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "insights-api.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	app := fiber.New()
	RegisterRoutes(app, NewHandler(database, "smoke-test-secret", time.Hour, time.UTC))
	return app
}

func jsonRequest(t *testing.T, method string, path string, token string, body any) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return request
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "CorrectHorse1",
	}), -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201 from register, got %d", response.StatusCode)
	}

	token, _ := decodeBody(t, response)["token"].(string)
	if token == "" {
		t.Fatal("expected a token in the register response")
	}
	return token
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	app := newTestApp(t)
	registerTestUser(t, app, "roundtrip@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "roundtrip@example.com",
		"password": "CorrectHorse1",
	}), -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 from login, got %d", response.StatusCode)
	}
	if token, _ := decodeBody(t, response)["token"].(string); token == "" {
		t.Fatal("expected a token in the login response")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	registerTestUser(t, app, "dup@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "dup@example.com",
		"password": "CorrectHorse1",
	}), -1)
	if err != nil {
		t.Fatalf("duplicate register request failed: %v", err)
	}
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409 for duplicate email, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestInsightsRequireAuth(t *testing.T) {
	app := newTestApp(t)

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/insights/correlations/food-mood", "", nil), -1)
	if err != nil {
		t.Fatalf("unauthenticated request failed: %v", err)
	}
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without a token, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestFoodMoodCorrelationEmptyJournal(t *testing.T) {
	app := newTestApp(t)
	token := registerTestUser(t, app, "empty@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/insights/correlations/food-mood", token, nil), -1)
	if err != nil {
		t.Fatalf("correlation request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for an empty journal, got %d", response.StatusCode)
	}
	body := decodeBody(t, response)
	if empty, _ := body["empty"].(bool); !empty {
		t.Fatalf("expected empty=true payload, got %v", body)
	}
}

func TestLogAndCorrelateEndToEnd(t *testing.T) {
	app := newTestApp(t)
	token := registerTestUser(t, app, "journal@example.com")

	logs := []struct {
		path string
		body map[string]any
	}{
		{"/api/log/mood", map[string]any{"date": "2024-01-01", "mood": "Happy"}},
		{"/api/log/mood", map[string]any{"date": "2024-01-02", "mood": "Sad"}},
		{"/api/log/food", map[string]any{"date": "2024-01-01", "breakfast": "Eggs, Toast", "water_glasses": 6}},
		{"/api/log/food", map[string]any{"date": "2024-01-02", "breakfast": "Eggs", "water_glasses": 2}},
	}
	for _, entry := range logs {
		response, err := app.Test(jsonRequest(t, http.MethodPost, entry.path, token, entry.body), -1)
		if err != nil {
			t.Fatalf("log request %s failed: %v", entry.path, err)
		}
		if response.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200 logging to %s, got %d", entry.path, response.StatusCode)
		}
		response.Body.Close()
	}

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/insights/correlations/food-mood", token, nil), -1)
	if err != nil {
		t.Fatalf("correlation request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeBody(t, response)
	if empty, _ := body["empty"].(bool); empty {
		t.Fatalf("expected a populated correlation payload, got %v", body)
	}
	rows, _ := body["correlations"].([]any)
	if len(rows) != 2 {
		t.Fatalf("expected 2 correlated foods, got %d", len(rows))
	}
	top, _ := rows[0].(map[string]any)
	if top["food_name"] != "Toast" {
		t.Fatalf("expected Toast ranked first, got %v", top["food_name"])
	}
}

func TestFoodSymptomCorrelationRejectsUnknownType(t *testing.T) {
	app := newTestApp(t)
	token := registerTestUser(t, app, "symptom@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/insights/correlations/food-symptom?type=sneezing", token, nil), -1)
	if err != nil {
		t.Fatalf("symptom correlation request failed: %v", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for an unknown symptom type, got %d", response.StatusCode)
	}
	body := decodeBody(t, response)
	if _, listed := body["allowed"]; !listed {
		t.Fatalf("expected the allowed metric list in the error payload, got %v", body)
	}
}

func TestWorkProfileDrivesWorkingDayAnalysis(t *testing.T) {
	app := newTestApp(t)
	token := registerTestUser(t, app, "profile@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodPut, "/api/profile/work", token, map[string]any{
		"working_days": []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		"sport_days":   []string{"Saturday"},
	}), -1)
	if err != nil {
		t.Fatalf("profile request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 saving the profile, got %d", response.StatusCode)
	}
	response.Body.Close()

	moods := map[string]string{
		"2024-01-01": "Sad",
		"2024-01-06": "Ecstatic",
	}
	for date, mood := range moods {
		logResponse, err := app.Test(jsonRequest(t, http.MethodPost, "/api/log/mood", token, map[string]any{
			"date": date,
			"mood": mood,
		}), -1)
		if err != nil {
			t.Fatalf("mood log failed: %v", err)
		}
		if logResponse.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200 logging mood, got %d", logResponse.StatusCode)
		}
		logResponse.Body.Close()
	}

	analysisResponse, err := app.Test(jsonRequest(t, http.MethodGet, "/api/insights/analysis/working-days", token, nil), -1)
	if err != nil {
		t.Fatalf("analysis request failed: %v", err)
	}
	if analysisResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", analysisResponse.StatusCode)
	}
	body := decodeBody(t, analysisResponse)
	analysis, _ := body["analysis"].(map[string]any)
	if analysis == nil {
		t.Fatalf("expected an analysis payload, got %v", body)
	}
	if analysis["label"] != "working days" {
		t.Fatalf("unexpected analysis label %v", analysis["label"])
	}
}

func TestWeeklyInsightsRejectsMalformedWeekOf(t *testing.T) {
	app := newTestApp(t)
	token := registerTestUser(t, app, "weekly@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/insights/weekly?week_of=yesterday", token, nil), -1)
	if err != nil {
		t.Fatalf("weekly request failed: %v", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for a malformed week_of, got %d", response.StatusCode)
	}
	response.Body.Close()
}
