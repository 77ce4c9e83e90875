package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tirage90/predictor/internal/apperr"
	"github.com/tirage90/predictor/internal/domain"
	"github.com/tirage90/predictor/internal/engine"
)

// handlePredict serves GET /predict?type=<id>&day=<0..6>.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	drawTypeID := queryInt(r, "type")
	dayOfWeek := queryInt(r, "day")

	resp, err := s.engine.Predict(r.Context(), drawTypeID, dayOfWeek)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type evaluateRequestBody struct {
	Numbers    [5]int `json:"numbers"`
	DrawTypeID *int   `json:"drawTypeId,omitempty"`
	DayOfWeek  *int   `json:"dayOfWeek,omitempty"`
}

// handleEvaluate serves POST /evaluate.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var body evaluateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	resp, err := s.engine.Evaluate(r.Context(), engine.EvaluateRequest{
		Numbers:    body.Numbers,
		DrawTypeID: body.DrawTypeID,
		DayOfWeek:  body.DayOfWeek,
	})
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleBrainStatus serves GET /api/brain?stream=winning|machine.
func (s *Server) handleBrainStatus(w http.ResponseWriter, r *http.Request) {
	stream := domain.StreamWinning
	if v := r.URL.Query().Get("stream"); v == string(domain.StreamMachine) {
		stream = domain.StreamMachine
	}
	writeJSON(w, http.StatusOK, s.engine.BrainStatus(stream))
}

type refreshResponseBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// handleRefresh serves POST /refresh?force_train=bool.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	forceTrain := r.URL.Query().Get("force_train") == "true"

	_, err := s.engine.Refresh(forceTrain)
	if err != nil {
		if apperr.IsKind(err, apperr.StateConflict) {
			writeJSON(w, http.StatusOK, refreshResponseBody{Success: false, Message: err.Error()})
			return
		}
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, refreshResponseBody{Success: true, Message: "refresh started"})
}

func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	if apperr.IsKind(err, apperr.InvalidInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.log.Error().Err(err).Msg("request failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}

func queryInt(r *http.Request, key string) *int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
