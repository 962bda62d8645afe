package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code        int             `json:"code"`
	CurrentTime int64           `json:"currentTime"`
	RequestID   string          `json:"requestId"`
	Text        string          `json:"text"`
	Data        json.RawMessage `json:"data"`
}

type calculatePayload struct {
	Inputs  domain.RawInputs          `json:"inputs"`
	Result  *domain.CalculationResult `json:"result"`
	Display struct {
		Return  string `json:"return"`
		Amount  string `json:"amount"`
		Summary string `json:"summary"`
		Invalid bool   `json:"invalid"`
	} `json:"display"`
}

func createTestServer(t *testing.T, locale string) *httptest.Server {
	t.Helper()
	display := domain.DisplaySettings{Locale: locale}
	s := New(calculation.NewCalculationEngineWithDisplay(display), display, nil)
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close() // nolint:errcheck
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestHealthHandler(t *testing.T) {
	ts := createTestServer(t, "en")
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, env.Code)
	assert.Equal(t, "OK", env.Text)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))

	now := time.Now().UnixMilli()
	assert.InDelta(t, now, env.CurrentTime, 5000)
}

func TestCalculateQueryHandler(t *testing.T) {
	ts := createTestServer(t, "en")
	resp, err := http.Get(ts.URL + "/api/calculate?principal=1%2C000%2C000&rate=2&times=5")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var data calculatePayload
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "1,000,000", data.Inputs.Principal)
	require.NotNil(t, data.Result)
	assert.Equal(t, "10", data.Result.ReturnPercent.String())
	assert.Equal(t, "1104000", data.Result.TotalAmount.String())
	assert.Equal(t, "approximately 110 man range", data.Result.MagnitudeSummary)
	assert.Equal(t, "Total return: 10%", data.Display.Return)
	assert.Equal(t, "Total amount: 1,104,000 won", data.Display.Amount)
}

func TestCalculateQueryHandler_LocaleOverride(t *testing.T) {
	ts := createTestServer(t, "en")
	resp, err := http.Get(ts.URL + "/api/calculate?principal=100000000&rate=10&times=2&locale=ko")
	require.NoError(t, err)

	env := decodeEnvelope(t, resp)
	var data calculatePayload
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "약 1억 2천만원대", data.Result.MagnitudeSummary)
	assert.Equal(t, "약 1억 2천만원대", data.Display.Summary)
	assert.Equal(t, "총 금액: 121,000,000원", data.Display.Amount)
}

func TestCalculateBodyHandler(t *testing.T) {
	ts := createTestServer(t, "ko")
	body := strings.NewReader(`{"principal":"","rate":"5","times":"3"}`)
	resp, err := http.Post(ts.URL+"/api/calculate", "application/json", body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var data calculatePayload
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "16", data.Result.ReturnPercent.String())
	assert.Nil(t, data.Result.TotalAmount)
	assert.Equal(t, "총 수익률: 16%", data.Display.Return)
	assert.Empty(t, data.Display.Amount)
}

func TestCalculate_InvalidInput(t *testing.T) {
	ts := createTestServer(t, "ko")
	resp, err := http.Get(ts.URL + "/api/calculate?principal=1000000&rate=abc&times=5")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusBadRequest, env.Code)
	assert.Equal(t, "입력값 오류", env.Text)

	var data calculatePayload
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Nil(t, data.Result)
	assert.True(t, data.Display.Invalid)
	assert.Equal(t, "총 수익률: 입력값 오류", data.Display.Return)
	assert.Empty(t, data.Display.Amount)
	assert.Empty(t, data.Display.Summary)
}

func TestCalculateBodyHandler_BadBody(t *testing.T) {
	ts := createTestServer(t, "en")
	resp, err := http.Post(ts.URL+"/api/calculate", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "invalid request body", env.Text)
}

func TestSummarizeHandler(t *testing.T) {
	ts := createTestServer(t, "en")

	tests := []struct {
		path    string
		status  int
		summary string
	}{
		{"/api/summarize/3480000", http.StatusOK, "approximately 340 man range"},
		{"/api/summarize/56,700,000", http.StatusOK, "approximately 5600 man range"},
		{"/api/summarize/123000000?locale=ko", http.StatusOK, "약 1억 2천만원대"},
		{"/api/summarize/9999", http.StatusOK, ""},
		{"/api/summarize/lots", http.StatusBadRequest, ""},
		{"/api/summarize/1e10000000", http.StatusBadRequest, ""},
		{"/api/summarize/3480000.5", http.StatusBadRequest, ""},
		{"/api/summarize/1234567890123456789012345678901", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			env := decodeEnvelope(t, resp)
			if tt.status != http.StatusOK {
				assert.Equal(t, "amount must be a number", env.Text)
				return
			}
			var data struct {
				Summary string `json:"summary"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, tt.summary, data.Summary)
		})
	}
}

func TestRequestID(t *testing.T) {
	var logs bytes.Buffer
	s := New(calculation.NewCalculationEngine(), domain.DisplaySettings{Locale: "en"}, slog.New(slog.NewTextHandler(&logs, nil)))
	handler := s.Routes()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	env := decodeEnvelope(t, rec.Result())
	assert.Equal(t, "abc-123", env.RequestID)
	assert.Contains(t, logs.String(), "request_id=abc-123")
	assert.Contains(t, logs.String(), "status=200")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/summarize/abc", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	env = decodeEnvelope(t, rec.Result())
	assert.Equal(t, generated, env.RequestID)
	assert.Contains(t, logs.String(), "status=400")
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	ts := createTestServer(t, "en")

	resp, err := http.Get(ts.URL + "/api/nothing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not found", decodeEnvelope(t, resp).Text)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/calculate", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "method not allowed", decodeEnvelope(t, resp).Text)
}

func TestListenAndServe_ShutsDownOnCancel(t *testing.T) {
	s := New(calculation.NewCalculationEngine(), domain.DisplaySettings{Locale: "en"}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
