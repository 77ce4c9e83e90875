package httpapi

import (
	"context"

	"github.com/tirage90/predictor/internal/domain"
	"github.com/tirage90/predictor/internal/engine"
)

// Engine is the subset of internal/engine.Engine the HTTP façade depends
// on, narrowed to an interface so handler tests can substitute a stub.
type Engine interface {
	Predict(ctx context.Context, drawTypeID, dayOfWeek *int) (engine.PredictResponse, error)
	Evaluate(ctx context.Context, req engine.EvaluateRequest) (engine.EvaluateResponse, error)
	BrainStatus(stream domain.Stream) engine.BrainStatusResponse
	Refresh(forceTrain bool) (engine.RefreshStatus, error)
}

var _ Engine = (*engine.Engine)(nil)
