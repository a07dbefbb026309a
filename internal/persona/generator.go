package persona

import (
	"encoding/json"
	"fmt"

	"clone-me-generator/internal/api"
)

// Client — минимальный интерфейс OpenAI-клиента, нужный генератору
type Client interface {
	CreateStructured(messages []api.Message, format *api.ResponseFormat) (json.RawMessage, error)
}

// Generator синтезирует одну случайную персону за запуск
type Generator struct {
	client Client
}

const systemPrompt = `Generate a random, realistic persona for answering personal questions.
The persona should be detailed enough to maintain consistent responses across various personal questions.
Include specific life experiences, values, and personality traits that will influence their answers.`

// JSON-схема профиля для structured outputs (strict mode требует
// перечисления всех полей в required и запрета лишних свойств)
var profileSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "age": {"type": "integer"},
    "occupation": {"type": "string"},
    "location": {"type": "string"},
    "background": {"type": "string"},
    "personality_traits": {"type": "array", "items": {"type": "string"}},
    "life_experiences": {"type": "array", "items": {"type": "string"}},
    "values": {"type": "array", "items": {"type": "string"}}
  },
  "required": ["name", "age", "occupation", "location", "background", "personality_traits", "life_experiences", "values"],
  "additionalProperties": false
}`)

// NewGenerator создает генератор персон
func NewGenerator(client Client) *Generator {
	return &Generator{client: client}
}

// Generate синтезирует одну детальную персону. Без повторных попыток:
// неудачный вызов фатален для всего запуска — без персоны генерировать нечего.
func (g *Generator) Generate() (*Profile, error) {
	messages := []api.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: "Create a detailed random persona."},
	}

	format := &api.ResponseFormat{
		Type: "json_schema",
		JSONSchema: &api.JSONSchema{
			Name:   "persona_profile",
			Strict: true,
			Schema: profileSchema,
		},
	}

	raw, err := g.client.CreateStructured(messages, format)
	if err != nil {
		return nil, &api.GenerationError{Subject: "персона", Err: err}
	}

	var profile Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, &api.GenerationError{
			Subject: "персона",
			Err:     fmt.Errorf("ответ не соответствует схеме профиля: %w", err),
		}
	}

	if err := profile.Validate(); err != nil {
		return nil, &api.GenerationError{
			Subject: "персона",
			Err:     fmt.Errorf("невалидный профиль: %w", err),
		}
	}

	return &profile, nil
}
