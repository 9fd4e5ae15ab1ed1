package google

import (
	"encoding/json"

	"github.com/google/uuid"
	ai "github.com/spetersoncode/relay"
	"google.golang.org/genai"
)

func convertTurns(turns []ai.Message) ([]*genai.Content, []*genai.Part) {
	var contents []*genai.Content
	var systemParts []*genai.Part

	for _, msg := range turns {
		if msg.Role == ai.RoleSystem {
			if msg.Content != "" {
				systemParts = append(systemParts, &genai.Part{Text: msg.Content})
			}
			continue
		}

		role := "user"
		if msg.Role == ai.RoleAssistant {
			role = "model"
		}

		var parts []*genai.Part
		if msg.Content != "" {
			parts = append(parts, &genai.Part{Text: msg.Content})
		}

		for _, tc := range msg.ToolCalls {
			// Arguments the model produced that fail to parse go back as an
			// empty object rather than nil args.
			var args map[string]any
			if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
				args = map[string]any{}
			}
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					Name: tc.Name,
					Args: args,
				},
			})
		}

		for _, tr := range msg.ToolResults {
			// Gemini wants a JSON object response; wrap bare text.
			var result map[string]any
			if err := json.Unmarshal([]byte(tr.Content), &result); err != nil {
				result = map[string]any{"result": tr.Content}
			}
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					Name:     tr.ToolCallID,
					Response: result,
				},
			})
		}

		if len(parts) > 0 {
			contents = append(contents, &genai.Content{
				Role:  role,
				Parts: parts,
			})
		}
	}

	return contents, systemParts
}

func convertTools(tools []ai.Tool) []*genai.Tool {
	if len(tools) == 0 {
		return nil
	}
	funcs := make([]*genai.FunctionDeclaration, len(tools))
	for i, t := range tools {
		funcs[i] = &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  convertSchema(t.Parameters),
		}
	}
	return []*genai.Tool{{FunctionDeclarations: funcs}}
}

func convertToolChoice(choice ai.ToolChoice) *genai.ToolConfig {
	mode := genai.FunctionCallingConfigModeAuto
	switch choice {
	case ai.ToolChoiceNone:
		mode = genai.FunctionCallingConfigModeNone
	case ai.ToolChoiceRequired:
		mode = genai.FunctionCallingConfigModeAny
	}
	return &genai.ToolConfig{
		FunctionCallingConfig: &genai.FunctionCallingConfig{Mode: mode},
	}
}

// convertSchema maps a JSON Schema object onto the genai schema type.
// Unknown or missing shapes degrade to an untyped object.
func convertSchema(raw json.RawMessage) *genai.Schema {
	var node map[string]any
	if len(raw) == 0 || json.Unmarshal(raw, &node) != nil {
		return &genai.Schema{Type: genai.TypeObject}
	}
	return schemaFromNode(node)
}

func schemaFromNode(node map[string]any) *genai.Schema {
	s := &genai.Schema{}

	switch node["type"] {
	case "string":
		s.Type = genai.TypeString
	case "integer":
		s.Type = genai.TypeInteger
	case "number":
		s.Type = genai.TypeNumber
	case "boolean":
		s.Type = genai.TypeBoolean
	case "array":
		s.Type = genai.TypeArray
		if items, ok := node["items"].(map[string]any); ok {
			s.Items = schemaFromNode(items)
		}
	default:
		s.Type = genai.TypeObject
	}

	if desc, ok := node["description"].(string); ok {
		s.Description = desc
	}
	if enum, ok := node["enum"].([]any); ok {
		for _, v := range enum {
			if str, ok := v.(string); ok {
				s.Enum = append(s.Enum, str)
			}
		}
	}
	if props, ok := node["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, p := range props {
			if pm, ok := p.(map[string]any); ok {
				s.Properties[name] = schemaFromNode(pm)
			}
		}
	}
	if req, ok := node["required"].([]any); ok {
		for _, r := range req {
			if str, ok := r.(string); ok {
				s.Required = append(s.Required, str)
			}
		}
	}

	return s
}

// extractToolCall returns the first function call among parts. Gemini
// does not assign call ids, so one is generated for result matching.
func extractToolCall(parts []*genai.Part) *ai.ToolCall {
	for _, part := range parts {
		if part.FunctionCall != nil {
			args, _ := json.Marshal(part.FunctionCall.Args)
			return &ai.ToolCall{
				ID:        "call_" + uuid.New().String(),
				Name:      part.FunctionCall.Name,
				Arguments: string(args),
			}
		}
	}
	return nil
}
