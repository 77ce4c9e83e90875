package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirage90/predictor/internal/apperr"
	"github.com/tirage90/predictor/internal/domain"
	"github.com/tirage90/predictor/internal/engine"
)

type stubEngine struct {
	predictResp  engine.PredictResponse
	predictErr   error
	evaluateResp engine.EvaluateResponse
	evaluateErr  error
	brainResp    engine.BrainStatusResponse
	refreshResp  engine.RefreshStatus
	refreshErr   error
}

func (s *stubEngine) Predict(ctx context.Context, drawTypeID, dayOfWeek *int) (engine.PredictResponse, error) {
	return s.predictResp, s.predictErr
}

func (s *stubEngine) Evaluate(ctx context.Context, req engine.EvaluateRequest) (engine.EvaluateResponse, error) {
	return s.evaluateResp, s.evaluateErr
}

func (s *stubEngine) BrainStatus(stream domain.Stream) engine.BrainStatusResponse {
	return s.brainResp
}

func (s *stubEngine) Refresh(forceTrain bool) (engine.RefreshStatus, error) {
	return s.refreshResp, s.refreshErr
}

func newTestServer(eng Engine) *Server {
	return New(Config{Port: 0, Log: zerolog.Nop(), Engine: eng, DevMode: true})
}

func TestHandlePredict_OK(t *testing.T) {
	stub := &stubEngine{predictResp: engine.PredictResponse{Main: engine.PredictionBlock{Numbers: []int{1, 2, 3, 4, 5}}}}
	srv := newTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/predict?type=1&day=3", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"numbers":[1,2,3,4,5]`)
}

func TestHandleEvaluate_InvalidInputReturns400(t *testing.T) {
	stub := &stubEngine{evaluateErr: apperr.New(apperr.InvalidInput, "numbers must be distinct")}
	srv := newTestServer(stub)

	body := strings.NewReader(`{"numbers":[1,1,2,3,4]}`)
	req := httptest.NewRequest(http.MethodPost, "/evaluate", body)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "numbers must be distinct")
}

func TestHandleRefresh_AlreadyRunningStaysSuccessFalse(t *testing.T) {
	stub := &stubEngine{refreshErr: apperr.New(apperr.StateConflict, "refresh already running")}
	srv := newTestServer(stub)

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestHandleBrainStatus_DefaultsToWinningStream(t *testing.T) {
	stub := &stubEngine{brainResp: engine.BrainStatusResponse{Stream: "winning"}}
	srv := newTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/brain", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stream":"winning"`)
}
