package qa

import (
	"encoding/json"
	"fmt"
	"strings"

	"clone-me-generator/internal/api"
	"clone-me-generator/internal/persona"
)

// Client — минимальный интерфейс OpenAI-клиента, нужный генератору
type Client interface {
	CreateStructured(messages []api.Message, format *api.ResponseFormat) (json.RawMessage, error)
}

// Generator отвечает на вопросы от лица зафиксированной персоны
type Generator struct {
	client Client
}

// JSON-схема пары вопрос-ответ для structured outputs
var pairSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "Question": {"type": "string"},
    "Response": {"type": "string"},
    "Reasoning": {"type": "string"}
  },
  "required": ["Question", "Response", "Reasoning"],
  "additionalProperties": false
}`)

// NewGenerator создает генератор ответов
func NewGenerator(client Client) *Generator {
	return &Generator{client: client}
}

// Answer генерирует ответ на один вопрос от лица персоны. Согласованность
// между вызовами достигается структурно: на каждый вопрос передается один и
// тот же неизменяемый профиль. Любая ошибка возвращается как GenerationError —
// решение, продолжать ли запуск, принимает вызывающая сторона.
func (g *Generator) Answer(question string, p *persona.Profile) (*Pair, error) {
	messages := []api.Message{
		{Role: "system", Content: g.buildPersonaContext(p)},
		{Role: "user", Content: question},
	}

	format := &api.ResponseFormat{
		Type: "json_schema",
		JSONSchema: &api.JSONSchema{
			Name:   "qa_pair",
			Strict: true,
			Schema: pairSchema,
		},
	}

	raw, err := g.client.CreateStructured(messages, format)
	if err != nil {
		return nil, &api.GenerationError{Subject: question, Err: err}
	}

	var pair Pair
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, &api.GenerationError{
			Subject: question,
			Err:     fmt.Errorf("ответ не соответствует схеме пары: %w", err),
		}
	}

	if err := pair.Validate(); err != nil {
		return nil, &api.GenerationError{
			Subject: question,
			Err:     fmt.Errorf("невалидная пара: %w", err),
		}
	}

	return &pair, nil
}

// buildPersonaContext создает системный промпт с полным пересказом
// всех полей персоны
func (g *Generator) buildPersonaContext(p *persona.Profile) string {
	var prompt strings.Builder

	// Строка идентичности
	prompt.WriteString(fmt.Sprintf("You are responding as %s, a %d-year-old %s from %s.\n",
		p.Name, p.Age, p.Occupation, p.Location))

	// Полный контекст персоны
	prompt.WriteString(fmt.Sprintf("Background: %s\n", p.Background))
	prompt.WriteString(fmt.Sprintf("Personality traits: %s\n", strings.Join(p.PersonalityTraits, ", ")))
	prompt.WriteString(fmt.Sprintf("Key life experiences: %s\n", strings.Join(p.LifeExperiences, ", ")))
	prompt.WriteString(fmt.Sprintf("Core values: %s\n\n", strings.Join(p.Values, ", ")))

	// Финальные инструкции
	prompt.WriteString("Provide answers that are consistent with this persona's background, experiences, and values.\n")
	prompt.WriteString("Include both the response and the reasoning behind it, explaining how the persona's background influences their answer.")

	return prompt.String()
}
