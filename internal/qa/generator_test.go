package qa

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"clone-me-generator/internal/api"
	"clone-me-generator/internal/persona"

	"github.com/stretchr/testify/require"
)

// stubClient — детерминированная замена OpenAI-клиента
type stubClient struct {
	raw          json.RawMessage
	err          error
	lastMessages []api.Message
	lastFormat   *api.ResponseFormat
}

func (s *stubClient) CreateStructured(messages []api.Message, format *api.ResponseFormat) (json.RawMessage, error) {
	s.lastMessages = messages
	s.lastFormat = format
	return s.raw, s.err
}

func testProfile() *persona.Profile {
	return &persona.Profile{
		Name:              "Laura Mitchell",
		Age:               67,
		Occupation:        "retired florist",
		Location:          "Portland, Oregon",
		Background:        "Ran a small flower shop for 40 years.",
		PersonalityTraits: []string{"warm", "patient"},
		LifeExperiences:   []string{"raised three kids", "survived a recession"},
		Values:            []string{"family", "craftsmanship"},
	}
}

func TestAnswer(t *testing.T) {
	client := &stubClient{raw: json.RawMessage(`{
		"Question": "What do you do for fun?",
		"Response": "I garden.",
		"Reasoning": "Her background as a retired florist..."
	}`)}

	pair, err := NewGenerator(client).Answer("What do you do for fun?", testProfile())
	require.NoError(t, err)

	require.Equal(t, "What do you do for fun?", pair.Question)
	require.Equal(t, "I garden.", pair.Response)
	require.Equal(t, "Her background as a retired florist...", pair.Reasoning)

	require.Equal(t, "json_schema", client.lastFormat.Type)
	require.Equal(t, "qa_pair", client.lastFormat.JSONSchema.Name)
}

func TestAnswerPersonaContext(t *testing.T) {
	client := &stubClient{raw: json.RawMessage(`{"Question": "q", "Response": "r", "Reasoning": "why"}`)}

	_, err := NewGenerator(client).Answer("What do you do for fun?", testProfile())
	require.NoError(t, err)

	require.Len(t, client.lastMessages, 2)

	// Системный промпт дословно пересказывает все поля персоны
	system := client.lastMessages[0]
	require.Equal(t, "system", system.Role)
	require.Contains(t, system.Content, "You are responding as Laura Mitchell, a 67-year-old retired florist from Portland, Oregon.")
	require.Contains(t, system.Content, "Background: Ran a small flower shop for 40 years.")
	require.Contains(t, system.Content, "Personality traits: warm, patient")
	require.Contains(t, system.Content, "Key life experiences: raised three kids, survived a recession")
	require.Contains(t, system.Content, "Core values: family, craftsmanship")

	// Сам вопрос уходит пользовательским сообщением без изменений
	require.Equal(t, api.Message{Role: "user", Content: "What do you do for fun?"}, client.lastMessages[1])
}

func TestAnswerSamePersonaEveryCall(t *testing.T) {
	// Один и тот же профиль дает байт-в-байт одинаковый контекст для всех вопросов
	client := &stubClient{raw: json.RawMessage(`{"Question": "q", "Response": "r", "Reasoning": "why"}`)}
	gen := NewGenerator(client)
	profile := testProfile()

	_, err := gen.Answer("first question", profile)
	require.NoError(t, err)
	first := client.lastMessages[0].Content

	_, err = gen.Answer("second question", profile)
	require.NoError(t, err)
	require.Equal(t, first, client.lastMessages[0].Content)
}

func TestAnswerAPIError(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("HTTP ошибка 429")}

	_, err := NewGenerator(client).Answer("What do you do for fun?", testProfile())
	require.Error(t, err)

	// Ошибка несет текст вопроса и причину
	var genErr *api.GenerationError
	require.True(t, errors.As(err, &genErr))
	require.Equal(t, "What do you do for fun?", genErr.Subject)
	require.True(t, strings.Contains(err.Error(), "429"))
}

func TestAnswerSchemaViolation(t *testing.T) {
	// Пустой Response — нарушение схемы, не фатальное для запуска
	client := &stubClient{raw: json.RawMessage(`{"Question": "q", "Response": "", "Reasoning": "why"}`)}

	_, err := NewGenerator(client).Answer("q", testProfile())
	require.Error(t, err)

	var genErr *api.GenerationError
	require.True(t, errors.As(err, &genErr))
}

func TestResultSucceeded(t *testing.T) {
	ok := &Result{Pair: &Pair{Question: "q", Response: "r"}}
	require.True(t, ok.Succeeded())

	failed := &Result{Err: fmt.Errorf("ошибка")}
	require.False(t, failed.Succeeded())
}
