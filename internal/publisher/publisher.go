package publisher

import (
	"fmt"
	"log"
	"os"
)

// HubClient — минимальный интерфейс клиента реестра датасетов
type HubClient interface {
	EnsureDatasetRepo(datasetID string, private bool) error
	UploadFile(datasetID, path string, content []byte, message string) error
	DatasetURL(datasetID string) string
}

// Publisher загружает проверенный датасет в реестр
type Publisher struct {
	hub HubClient
}

// Имя файла датасета внутри репозитория
const datasetFileName = "data.csv"

// New создает публикатор
func New(hub HubClient) *Publisher {
	return &Publisher{hub: hub}
}

// Publish загружает файл в реестр под идентификатором datasetID и возвращает
// адрес датасета. Ошибки загрузки не ретраятся и локальный файл не меняют.
// Файл должен быть предварительно проверен через Validate.
func (p *Publisher) Publish(path, datasetID string, private bool) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения файла %s: %w", path, err)
	}

	log.Printf("Публикую датасет %s (%d байт) как %s", path, len(content), datasetID)

	if err := p.hub.EnsureDatasetRepo(datasetID, private); err != nil {
		return "", fmt.Errorf("ошибка создания репозитория %s: %w", datasetID, err)
	}

	if err := p.hub.UploadFile(datasetID, datasetFileName, content, "Upload QA dataset"); err != nil {
		return "", fmt.Errorf("ошибка загрузки датасета: %w", err)
	}

	return p.hub.DatasetURL(datasetID), nil
}
