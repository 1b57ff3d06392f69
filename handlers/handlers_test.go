package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"aging_curve/config"
	"aging_curve/models"
	"aging_curve/services"
)

type fakeAnalysis struct {
	got models.AnalysisRequest
	res *services.Analysis
	err error
}

func (f *fakeAnalysis) Init(_ context.Context, req models.AnalysisRequest) (*services.Analysis, error) {
	f.got = req
	return f.res, f.err
}

func (f *fakeAnalysis) ReInit(_ context.Context, req models.AnalysisRequest) (*services.Analysis, error) {
	f.got = req
	return f.res, f.err
}

type fakeResults struct {
	rec *models.ResultRecord
	err error
}

func (f fakeResults) GetResult(_ context.Context, id string) (*models.ResultRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rec, nil
}

type fakeMain struct{ err error }

func (f fakeMain) ServerTime(context.Context) (string, error) {
	return "2025-01-01T00:00:00Z", f.err
}

func newTestRouter(a *fakeAnalysis, r fakeResults, m fakeMain) http.Handler {
	return NewRouter(NewHandler(a, r, m), &config.Config{})
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

var sample = models.AnalysisResult{AnalysisSummary: models.AnalysisSummary{Theme: "늦게 피는 꽃", Advice: "천천히"}}

func TestInitSuccess(t *testing.T) {
	a := &fakeAnalysis{res: &services.Analysis{ID: "id-1", Result: sample}}
	rec, out := do(t, newTestRouter(a, fakeResults{}, fakeMain{}), http.MethodPost, "/api/v1/aging/init",
		`{"birthDate":"1990-05-01","birthTime":"08:00","gender":"M","isMarried":"N","isDating":"Y"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, out["success"])
	require.Equal(t, "id-1", out["resultId"])
	data := out["data"].(map[string]any)
	summary := data["analysis_summary"].(map[string]any)
	require.Equal(t, "늦게 피는 꽃", summary["theme"])
	require.Contains(t, data, "wealth_and_career")
	require.Equal(t, "08:00", a.got.BirthTime)
	require.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestReInitSuccess(t *testing.T) {
	a := &fakeAnalysis{res: &services.Analysis{ID: "id-2", Result: sample}}
	rec, out := do(t, newTestRouter(a, fakeResults{}, fakeMain{}), http.MethodPost, "/api/v1/aging/reInit",
		`{"birthDate":"1990-05-01","gender":"M","isMarried":"Y"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "id-2", out["resultId"])
	require.Equal(t, "Y", a.got.IsMarried)
}

func TestInitBadJSON(t *testing.T) {
	rec, out := do(t, newTestRouter(&fakeAnalysis{}, fakeResults{}, fakeMain{}), http.MethodPost, "/api/v1/aging/init", `{`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, false, out["success"])
	require.EqualValues(t, models.CodeInvalidParams, out["code"])
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   int
	}{
		{fmt.Errorf("%w: gender", services.ErrMissingParam), http.StatusBadRequest, models.CodeMissingParams},
		{fmt.Errorf("%w: bad gender", services.ErrValidation), http.StatusBadRequest, models.CodeInvalidParams},
		{fmt.Errorf("%w: 429", services.ErrModelUnavailable), http.StatusBadGateway, models.CodeThirdPartyAPIError},
		{fmt.Errorf("%w: quote", services.ErrMalformedModelOutput), http.StatusBadGateway, models.CodeMalformedOutput},
		{errors.New("db down"), http.StatusInternalServerError, models.CodeServerError},
	}
	for _, tc := range cases {
		a := &fakeAnalysis{err: tc.err}
		rec, out := do(t, newTestRouter(a, fakeResults{}, fakeMain{}), http.MethodPost, "/api/v1/aging/init", `{}`)
		require.Equal(t, tc.status, rec.Code, tc.err.Error())
		require.Equal(t, false, out["success"])
		require.EqualValues(t, tc.code, out["code"])
		require.NotEmpty(t, out["message"])
		require.NotEmpty(t, out["error"])
	}
}

func TestInternalErrorDetailIsHidden(t *testing.T) {
	a := &fakeAnalysis{err: errors.New("dial tcp 10.0.0.1:3306: refused")}
	_, out := do(t, newTestRouter(a, fakeResults{}, fakeMain{}), http.MethodPost, "/api/v1/aging/init", `{}`)
	require.NotContains(t, out["error"], "10.0.0.1")
}

func TestGetResult(t *testing.T) {
	r := fakeResults{rec: &models.ResultRecord{
		ID:         "id-9",
		UserInput:  models.Profile{Birth: "1990-05-01 08:00", Gender: "M", IsMarried: "N", IsDating: "Y"},
		ResultData: sample,
		Status:     models.StatusDeleted,
	}}
	rec, out := do(t, newTestRouter(&fakeAnalysis{}, r, fakeMain{}), http.MethodGet, "/api/v1/result/id-9", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, out["success"])
	require.Equal(t, "id-9", out["resultId"])
	input := out["inputdata"].(map[string]any)
	require.Equal(t, "1990-05-01 08:00", input["birth"])
	require.Contains(t, out, "data")
}

func TestGetResultNotFound(t *testing.T) {
	r := fakeResults{err: fmt.Errorf("%w: result x", services.ErrNotFound)}
	rec, out := do(t, newTestRouter(&fakeAnalysis{}, r, fakeMain{}), http.MethodGet, "/api/v1/result/x", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.EqualValues(t, models.CodeResultNotFound, out["code"])
}

func TestMainInit(t *testing.T) {
	h := newTestRouter(&fakeAnalysis{}, fakeResults{}, fakeMain{})
	for _, path := range []string{"/api/v1/main/init", "/api/v1/main/index"} {
		rec, out := do(t, h, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "성공", out["message"])
		require.Equal(t, "2025-01-01T00:00:00Z", out["data"].(map[string]any)["time"])
	}
}

func TestMainInitFailure(t *testing.T) {
	rec, _ := do(t, newTestRouter(&fakeAnalysis{}, fakeResults{}, fakeMain{err: errors.New("db")}), http.MethodGet, "/api/v1/main/init", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestOperationalRoutes(t *testing.T) {
	h := newTestRouter(&fakeAnalysis{}, fakeResults{}, fakeMain{})

	rec, out := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", out["status"])

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/api/v1/aging/init")
}

func TestRequestIDIsPropagated(t *testing.T) {
	h := newTestRouter(&fakeAnalysis{}, fakeResults{}, fakeMain{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}
