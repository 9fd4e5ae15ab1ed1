package prompt

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	ai "github.com/spetersoncode/relay"
)

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
	encodingErr  error
)

// EstimateTokens approximates the input token count of an envelope using
// the cl100k_base encoding. Providers report exact counts after the
// fact; this estimate exists for pre-dispatch logging and budgeting.
// Returns 0 if the encoding cannot be loaded.
func EstimateTokens(env *ai.Envelope) int {
	encodingOnce.Do(func() {
		encoding, encodingErr = tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
	})
	if encodingErr != nil {
		return 0
	}

	total := 0
	for _, turn := range env.Turns {
		if turn.Content != "" {
			total += len(encoding.Encode(turn.Content, nil, nil))
		}
		for _, tc := range turn.ToolCalls {
			total += len(encoding.Encode(tc.Arguments, nil, nil))
		}
		for _, tr := range turn.ToolResults {
			total += len(encoding.Encode(tr.Content, nil, nil))
		}
	}
	return total
}
