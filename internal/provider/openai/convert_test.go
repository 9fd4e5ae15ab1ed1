package openai

import (
	"encoding/json"
	"testing"

	ai "github.com/spetersoncode/relay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTools(t *testing.T) {
	t.Run("passes a valid schema through", func(t *testing.T) {
		tools := convertTools([]ai.Tool{{
			Name:       "search",
			Parameters: json.RawMessage(`{"type":"object","properties":{"q":{"type":"string"}}}`),
		}})
		require.Len(t, tools, 1)
		assert.Equal(t, "object", tools[0].Function.Parameters["type"])
	})

	t.Run("malformed schema degrades to empty object schema", func(t *testing.T) {
		tools := convertTools([]ai.Tool{{
			Name:       "broken",
			Parameters: json.RawMessage(`not json`),
		}})
		require.Len(t, tools, 1)
		assert.Equal(t, "object", tools[0].Function.Parameters["type"])
		assert.Empty(t, tools[0].Function.Parameters["properties"])
	})
}
