package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/bankrecon/backend/src/database"
	"github.com/username/bankrecon/backend/src/model"
	"github.com/username/bankrecon/backend/src/models"
	"github.com/username/bankrecon/backend/src/parsers/bankcsv"
	"github.com/username/bankrecon/backend/src/processors"
	"github.com/username/bankrecon/backend/src/services"
	"golang.org/x/time/rate"
)

const testMaxUpload = 64 * 1024

func newTestRouter(t *testing.T, limiter *rate.Limiter) http.Handler {
	t.Helper()
	h, _ := newTestRouterWithDB(t, limiter)
	return h
}

func newTestRouterWithDB(t *testing.T, limiter *rate.Limiter) (http.Handler, *sql.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "handlers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db, ""))

	store := model.NewSQLStore(db)
	h := NewRouter(RouterOptions{
		Periods:        NewPeriodHandler(services.NewPeriodService(store, cache.New(time.Minute, time.Minute))),
		Movements:      NewMovementHandler(services.NewMovementService(store, bankcsv.NewParser()), testMaxUpload),
		Checkpoints:    NewCheckpointHandler(services.NewCheckpointService(store)),
		Validations:    NewValidationHandler(services.NewValidationService(store, processors.NewReconciliationProcessor())),
		AllowedOrigins: []string{"http://localhost:4200"},
		Limiter:        limiter,
	})
	return h, db
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createSeptember(t *testing.T, h http.Handler) models.Period {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/periods", `{"year":2024,"month":"septembre"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[models.Period](t, rec)
}

func TestPeriodEndpoints(t *testing.T) {
	h := newTestRouter(t, nil)

	period := createSeptember(t, h)
	assert.Equal(t, "2024-09-01", period.StartDate.String())
	assert.Equal(t, "2024-09-30", period.EndDate.String())

	rec := do(t, h, http.MethodPost, "/api/periods", `{"year":2024,"month":"Septembre"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/periods", `{"year":2024,"month":"september"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/periods", `{"year":2024,"month":"mars","day":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown fields are rejected")

	rec = do(t, h, http.MethodPost, "/api/periods", `{"year":2024,"month":"mars"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/periods", "")
	require.Equal(t, http.StatusOK, rec.Code)
	periods := decode[[]models.Period](t, rec)
	require.Len(t, periods, 2)
	assert.Equal(t, models.March, periods[0].Month)
	assert.Equal(t, models.September, periods[1].Month)

	rec = do(t, h, http.MethodPut, "/api/periods/"+period.ID, `{"year":2024,"month":"février"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Period](t, rec)
	assert.Equal(t, "2024-02-29", updated.EndDate.String())

	rec = do(t, h, http.MethodGet, "/api/periods/"+period.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.February, decode[models.Period](t, rec).Month)

	rec = do(t, h, http.MethodDelete, "/api/periods/"+period.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/periods/"+period.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "not found")
}

func TestCreateMovement_Errors(t *testing.T) {
	h := newTestRouter(t, nil)
	period := createSeptember(t, h)
	path := "/api/periods/" + period.ID + "/movements"

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"valid", path, `{"date":"2024-09-03","wording":"Loyer","amount":"-750.00"}`, http.StatusCreated},
		{"numeric amount", path, `{"date":"2024-09-04","wording":"Courses","amount":-42.5}`, http.StatusCreated},
		{"missing amount", path, `{"date":"2024-09-03","wording":"Loyer"}`, http.StatusBadRequest},
		{"missing date", path, `{"wording":"Loyer","amount":"10"}`, http.StatusBadRequest},
		{"date outside period", path, `{"date":"2024-10-01","wording":"Loyer","amount":"10"}`, http.StatusBadRequest},
		{"empty wording", path, `{"date":"2024-09-03","wording":"  ","amount":"10"}`, http.StatusBadRequest},
		{"formula wording", path, `{"date":"2024-09-03","wording":"=HYPERLINK(1)","amount":"10"}`, http.StatusBadRequest},
		{"empty body", path, ``, http.StatusBadRequest},
		{"trailing data", path, `{"date":"2024-09-03","wording":"a","amount":"1"}{}`, http.StatusBadRequest},
		{"unknown period", "/api/periods/" + uuid.NewString() + "/movements", `{"date":"2024-09-03","wording":"Loyer","amount":"10"}`, http.StatusNotFound},
		{"malformed period id", "/api/periods/nope/movements", `{"date":"2024-09-03","wording":"Loyer","amount":"10"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	rec := do(t, h, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	movements := decode[[]models.Movement](t, rec)
	require.Len(t, movements, 2)
	assert.Equal(t, "-750", movements[0].Amount.String())

	rec = do(t, h, http.MethodGet, "/api/movements/"+movements[0].ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodDelete, "/api/movements/"+movements[0].ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodDelete, "/api/movements/"+movements[0].ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckpointEndpoints(t *testing.T) {
	h := newTestRouter(t, nil)
	period := createSeptember(t, h)

	rec := do(t, h, http.MethodPost, "/api/periods/"+period.ID+"/checkpoints", `{"date":"2024-09-30","balance":"100"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	checkpoint := decode[models.Checkpoint](t, rec)

	rec = do(t, h, http.MethodPost, "/api/periods/"+period.ID+"/checkpoints", `{"date":"2024-09-30"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/checkpoints/"+checkpoint.ID, `{"balance":"250.10"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patched := decode[models.Checkpoint](t, rec)
	assert.Equal(t, "250.1", patched.Balance.String())
	assert.Equal(t, "2024-09-30", patched.Date.String())

	rec = do(t, h, http.MethodPatch, "/api/checkpoints/"+checkpoint.ID, `{"date":"2024-08-31"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/checkpoints/"+checkpoint.ID, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/periods/"+period.ID+"/checkpoints", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Checkpoint](t, rec), 1)

	rec = do(t, h, http.MethodDelete, "/api/checkpoints/"+checkpoint.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/checkpoints/"+checkpoint.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidationEndpoints(t *testing.T) {
	h := newTestRouter(t, nil)
	period := createSeptember(t, h)
	base := "/api/periods/" + period.ID

	rec := do(t, h, http.MethodGet, base+"/validations/current", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Nothing recorded yet: the run succeeds and reports what is missing.
	rec = do(t, h, http.MethodPost, base+"/validations", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	first := decode[models.Validation](t, rec)
	assert.False(t, first.IsValid)
	require.Len(t, first.ValidationErrors, 2)
	assert.Equal(t, models.MissingMovements, first.ValidationErrors[0].Type)
	assert.Equal(t, models.MissingCheckpoint, first.ValidationErrors[1].Type)

	require.Equal(t, http.StatusCreated,
		do(t, h, http.MethodPost, base+"/movements", `{"date":"2024-09-01","wording":"Salaire","amount":"2500"}`).Code)
	require.Equal(t, http.StatusCreated,
		do(t, h, http.MethodPost, base+"/checkpoints", `{"date":"2024-09-30","balance":"2500"}`).Code)

	rec = do(t, h, http.MethodPost, base+"/validations", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	second := decode[models.Validation](t, rec)
	assert.True(t, second.IsValid)
	assert.Empty(t, second.ValidationErrors)
	require.NotNil(t, second.PreviousValidationID)
	assert.Equal(t, first.ID, *second.PreviousValidationID)
	require.NotNil(t, second.Period)
	assert.Equal(t, period.ID, second.Period.ID)
	assert.Len(t, second.Movements, 1)
	assert.Len(t, second.Checkpoints, 1)

	rec = do(t, h, http.MethodGet, base+"/validations/current", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, second.ID, decode[models.Validation](t, rec).ID)

	rec = do(t, h, http.MethodGet, base+"/validations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	history := decode[[]models.Validation](t, rec)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.True(t, history[1].IsHistorical)

	rec = do(t, h, http.MethodGet, "/api/validations/"+first.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[models.Validation](t, rec).IsHistorical)

	rec = do(t, h, http.MethodDelete, "/api/validations/"+second.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, base+"/validations/current", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/periods/"+uuid.NewString()+"/validations", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func uploadRequest(t *testing.T, path, field, contentType, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="releve.csv"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImportMovements(t *testing.T) {
	h := newTestRouter(t, nil)
	period := createSeptember(t, h)
	path := "/api/periods/" + period.ID + "/movements/import"

	statement := "Date;Libellé;Débit;Crédit\n" +
		"01/09/2024;Salaire;;2 500,00\n" +
		"03/09/2024;Loyer;750,00;\n"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, uploadRequest(t, path, "file", "text/csv", statement))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	imported := decode[[]models.Movement](t, rec)
	require.Len(t, imported, 2)
	assert.Equal(t, "2500", imported[0].Amount.String())
	assert.Equal(t, "-750", imported[1].Amount.String())

	tests := []struct {
		name        string
		field       string
		contentType string
		content     string
		status      int
	}{
		{"wrong field", "upload", "text/csv", statement, http.StatusBadRequest},
		{"spreadsheet", "file", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", statement, http.StatusBadRequest},
		{"binary content", "file", "text/csv", "date,wording,amount\x00\x01\x02", http.StatusBadRequest},
		{"row outside period", "file", "text/csv", "date,wording,amount\n2024-10-01,Loyer,-750\n", http.StatusBadRequest},
		{"too large", "file", "text/csv", strings.Repeat("a", testMaxUpload+1), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, uploadRequest(t, path, tt.field, tt.contentType, tt.content))
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	rec = do(t, h, http.MethodGet, "/api/periods/"+period.ID+"/movements", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Movement](t, rec), 2, "failed imports leave no rows behind")
}

func TestRequestIDAndNotFound(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	rec = do(t, h, http.MethodGet, "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestMalformedIDs(t *testing.T) {
	h := newTestRouter(t, nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/periods/42"},
		{http.MethodDelete, "/api/periods/not-a-uuid"},
		{http.MethodGet, "/api/periods/42/movements"},
		{http.MethodGet, "/api/periods/42/validations/current"},
		{http.MethodGet, "/api/movements/42"},
		{http.MethodDelete, "/api/checkpoints/abc"},
		{http.MethodPatch, "/api/checkpoints/abc"},
		{http.MethodGet, "/api/validations/1234"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[map[string]string](t, rec)["error"], "expected a UUID")
		})
	}

	rec := do(t, h, http.MethodGet, "/api/validations/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInternalErrorCarriesRequestID(t *testing.T) {
	h, db := newTestRouterWithDB(t, nil)
	require.NoError(t, db.Close())

	rec := do(t, h, http.MethodGet, "/api/periods", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	requestID := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, requestID)
	msg := decode[map[string]string](t, rec)["error"]
	assert.Equal(t, "Internal server error (request "+requestID+")", msg)
	assert.NotContains(t, msg, "closed", "storage details stay in the logs")
}

func TestCORS(t *testing.T) {
	h := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/periods", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:4200", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/periods", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	h := newTestRouter(t, rate.NewLimiter(rate.Every(time.Hour), 2))

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/", "").Code)
	rec := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too many requests", decode[map[string]string](t, rec)["error"])
}
