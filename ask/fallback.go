package ask

import (
	"math/rand/v2"

	ai "github.com/spetersoncode/relay"
)

// apologies is the pool of canned fallback responses. One is chosen
// uniformly at random when a request degrades.
var apologies = []string{
	"I'm sorry, I wasn't able to complete that request. Please try again in a moment.",
	"Something went wrong on my end and I couldn't finish answering. Please try again shortly.",
	"I ran into a problem while working on that. Give me another try in a little while.",
	"Apologies, I couldn't get a response together this time. Please try again soon.",
	"I hit a snag and couldn't complete your request. It's worth trying again in a moment.",
}

// Fallback builds degraded results for requests that could not be
// completed. The pick function exists for deterministic tests.
type Fallback struct {
	pick func(n int) int
}

// NewFallback creates a Fallback with uniform random selection.
func NewFallback() *Fallback {
	return &Fallback{pick: rand.IntN}
}

// Build produces an error-flagged result carrying one of the canned
// apologies, zeroed token counts, and the prompt and model of the
// failed request.
func (f *Fallback) Build(env *ai.Envelope) *ai.Result {
	return &ai.Result{
		Response:     apologies[f.pick(len(apologies))],
		Model:        env.Model,
		InputTokens:  0,
		OutputTokens: 0,
		TotalTokens:  0,
		IsError:      true,
		Prompt:       env.CloneTurns(),
	}
}
