package config

import (
	"fmt"
	"os"
)

type HubConfig struct {
	Token   string
	BaseURL string
}

// LoadHubConfig загружает конфигурацию Hugging Face Hub из переменных окружения
func LoadHubConfig() *HubConfig {
	return &HubConfig{
		Token:   os.Getenv("HF_TOKEN"),
		BaseURL: getEnvOrDefault("HF_HUB_URL", "https://huggingface.co"),
	}
}

// ValidateConfig проверяет корректность конфигурации
func (c *HubConfig) ValidateConfig() error {
	if c.Token == "" {
		return fmt.Errorf("HF_TOKEN is required")
	}

	return nil
}
