package mlfeature

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/tirage90/predictor/internal/domain"
)

// OpenAIRanker asks a chat-completion model to rank candidate numbers from a
// draw window, the same GenerateCompletion shape the teacher used to ask a
// model for a directional call from recent candles.
type OpenAIRanker struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

// NewOpenAIRanker builds a Ranker backed by the OpenAI chat completion API.
func NewOpenAIRanker(apiKey, model string, log zerolog.Logger) *OpenAIRanker {
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAIRanker{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    log.With().Str("component", "mlfeature_openai").Logger(),
	}
}

func (r *OpenAIRanker) Rank(ctx context.Context, draws []domain.Draw, k int) ([]int, error) {
	window := draws
	if len(window) > windowSize {
		window = window[len(window)-windowSize:]
	}

	prompt := formatDrawPrompt(window, k)
	r.log.Debug().Str("prompt", prompt).Msg("sending draw window to openai")

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		r.log.Error().Err(err).Msg("openai api error")
		return nil, err
	}
	if len(resp.Choices) == 0 {
		r.log.Warn().Msg("openai returned empty choices")
		return nil, nil
	}

	numbers := parseRankedNumbers(resp.Choices[0].Message.Content, k)
	return numbers, nil
}

// formatDrawPrompt builds a prompt listing the chronological draw window and
// asking for a ranked candidate list, the same shape as the teacher's
// FormatCandlePrompt built from recent candles.
func formatDrawPrompt(window []domain.Draw, k int) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following lottery draws, most recent last:\n\n")
	for _, d := range window {
		sb.WriteString(fmt.Sprintf("%s: %v\n", d.Date.Format("2006-01-02"), d.Winning))
	}
	sb.WriteString(fmt.Sprintf("\nRank the %d numbers (1-90) most likely to appear next.\n", k))
	sb.WriteString("Respond with only a comma-separated list of numbers, most likely first.")
	return sb.String()
}

// parseRankedNumbers extracts up to k distinct numbers in 1..90 from a
// free-form completion, in the order they appear.
func parseRankedNumbers(content string, k int) []int {
	fields := strings.FieldsFunc(content, func(r rune) bool {
		return !('0' <= r && r <= '9')
	})

	seen := make(map[int]bool, k)
	out := make([]int, 0, k)
	for _, f := range fields {
		if len(out) >= k {
			break
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > 90 || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
