package engine

import "github.com/tirage90/predictor/internal/domain"

// BrainStatus returns one stream's weights and accuracy plus its recent
// real-world performance derived from the prediction-history log.
func (e *Engine) BrainStatus(stream domain.Stream) BrainStatusResponse {
	state := e.brainFor(stream).Status()

	weights := make(map[string]float64, len(state.Weights))
	for k, v := range state.Weights {
		weights[string(k)] = v
	}

	return BrainStatusResponse{
		Stream:          string(stream),
		Weights:         weights,
		GlobalAccuracy:  state.Global.GlobalAccuracy(),
		TotalDraws:      state.Global.TotalDraws,
		RealPerformance: e.recentPerformance(nil),
	}
}
