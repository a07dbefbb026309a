package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"clone-me-generator/internal/config"
	"clone-me-generator/internal/hub"
	"clone-me-generator/internal/publisher"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var private bool

var rootCmd = &cobra.Command{
	Use:   "publish <файл> <owner/name>",
	Short: "Проверка и публикация QA-датасета на Hugging Face Hub",
	Long: `Проверяет готовый CSV датасет (существование, корректность, обязательные
колонки, непустоту) и загружает его в dataset-репозиторий на Hugging Face Hub.

Пример:
  publish ./data/output/qa_output_laura_mitchell.csv tdfacer/clone_me_generated_sample`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], args[1])
	},
}

func init() {
	rootCmd.Flags().BoolVar(&private, "private", false, "сделать датасет приватным (по умолчанию публичный)")
}

func run(filePath, datasetID string) error {
	// Загружаем переменные окружения (.env опционален)
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, использую переменные окружения")
	}

	// Формат идентификатора проверяем до любого I/O
	if !strings.Contains(datasetID, "/") {
		return fmt.Errorf("идентификатор датасета должен иметь формат owner/name, получено %q", datasetID)
	}

	hubCfg := config.LoadHubConfig()
	if err := hubCfg.ValidateConfig(); err != nil {
		return fmt.Errorf("ошибка конфигурации Hub: %w", err)
	}

	// Валидируем файл датасета
	fmt.Printf("Проверяю файл %s...\n", filePath)
	if err := publisher.Validate(filePath); err != nil {
		return fmt.Errorf("ошибка валидации: %w", err)
	}
	fmt.Println("✅ Файл прошел проверку")

	// Публикуем
	pub := publisher.New(hub.NewClient(hubCfg))
	url, err := pub.Publish(filePath, datasetID, private)
	if err != nil {
		return err
	}

	fmt.Println("🎉 Датасет успешно опубликован!")
	fmt.Printf("Датасет доступен по адресу: %s\n", url)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
