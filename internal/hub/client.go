package hub

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"clone-me-generator/internal/config"
)

// Client — клиент Hugging Face Hub API для загрузки датасетов
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// Hub API структуры
type createRepoRequest struct {
	Type         string `json:"type"`
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	Private      bool   `json:"private"`
}

// Строки NDJSON-пейлоада операции commit
type commitHeader struct {
	Summary string `json:"summary"`
}

type commitFile struct {
	Content  string `json:"content"`
	Path     string `json:"path"`
	Encoding string `json:"encoding"`
}

type commitLine struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

type hubError struct {
	Error string `json:"error"`
}

// NewClient создает клиент Hub из конфигурации
func NewClient(cfg *config.HubConfig) *Client {
	return &Client{
		token:   cfg.Token,
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: 120 * time.Second, // Загрузка датасета может быть долгой
		},
	}
}

// EnsureDatasetRepo создает dataset-репозиторий owner/name, если его еще нет.
// Уже существующий репозиторий (HTTP 409) не считается ошибкой.
func (c *Client) EnsureDatasetRepo(datasetID string, private bool) error {
	owner, name, err := splitDatasetID(datasetID)
	if err != nil {
		return err
	}

	request := createRepoRequest{
		Type:         "dataset",
		Name:         name,
		Organization: owner,
		Private:      private,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/api/repos/create", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	// 409 — репозиторий уже существует, для нас это успех
	if resp.StatusCode == http.StatusConflict {
		return nil
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("Hub API ошибка %d: %s", resp.StatusCode, hubErrorMessage(body))
	}

	return nil
}

// UploadFile коммитит один файл в main-ветку dataset-репозитория.
// Пейлоад — NDJSON: строка заголовка коммита плюс строка файла в base64.
func (c *Client) UploadFile(datasetID, path string, content []byte, message string) error {
	if _, _, err := splitDatasetID(datasetID); err != nil {
		return err
	}

	var payload bytes.Buffer
	encoder := json.NewEncoder(&payload)

	lines := []commitLine{
		{Key: "header", Value: commitHeader{Summary: message}},
		{Key: "file", Value: commitFile{
			Content:  base64.StdEncoding.EncodeToString(content),
			Path:     path,
			Encoding: "base64",
		}},
	}

	for _, line := range lines {
		if err := encoder.Encode(line); err != nil {
			return fmt.Errorf("ошибка сериализации коммита: %w", err)
		}
	}

	url := fmt.Sprintf("%s/api/datasets/%s/commit/main", c.baseURL, datasetID)
	req, err := http.NewRequest("POST", url, &payload)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-ndjson")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Hub API ошибка %d: %s", resp.StatusCode, hubErrorMessage(body))
	}

	return nil
}

// DatasetURL возвращает публичный адрес датасета
func (c *Client) DatasetURL(datasetID string) string {
	return fmt.Sprintf("%s/datasets/%s", c.baseURL, datasetID)
}

// splitDatasetID разбирает идентификатор формата owner/name
func splitDatasetID(datasetID string) (string, string, error) {
	parts := strings.SplitN(datasetID, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("идентификатор датасета должен иметь формат owner/name, получено %q", datasetID)
	}
	return parts[0], parts[1], nil
}

// hubErrorMessage достает человекочитаемое сообщение из тела ошибки
func hubErrorMessage(body []byte) string {
	var hubErr hubError
	if err := json.Unmarshal(body, &hubErr); err == nil && hubErr.Error != "" {
		return hubErr.Error
	}
	return string(body)
}
