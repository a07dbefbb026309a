package main

import (
	"fmt"
	"log"
	"os"

	"clone-me-generator/internal/api"
	"clone-me-generator/internal/config"
	"clone-me-generator/internal/metrics"
	"clone-me-generator/internal/persona"
	"clone-me-generator/internal/pipeline"
	"clone-me-generator/internal/qa"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	inputFile  string
	outputDir  string
)

var rootCmd = &cobra.Command{
	Use:   "generate",
	Short: "Генерация синтетического QA-датасета от лица случайной персоны",
	Long: `Генератор придумывает одну согласованную вымышленную персону и отвечает
на все вопросы входного опросника от её лица. Каждый ответ дописывается в
выходной CSV сразу после получения, поэтому прерванный запуск оставляет
корректный частичный датасет.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "config/generator.yaml", "путь к YAML конфигурации")
	rootCmd.Flags().StringVar(&inputFile, "input", "", "переопределить путь к входному опроснику")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "переопределить директорию результатов")
}

func run() error {
	fmt.Println("🚀 Запуск генератора QA-датасета...")

	// Загружаем переменные окружения (.env опционален)
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, использую переменные окружения")
	}

	// Конфигурация OpenAI из окружения
	openaiCfg := config.LoadOpenAIConfig()
	if err := openaiCfg.ValidateConfig(); err != nil {
		return fmt.Errorf("ошибка конфигурации OpenAI: %w", err)
	}

	// Конфигурация пайплайна из YAML, флаги имеют приоритет
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации пайплайна: %w", err)
	}

	if inputFile != "" {
		cfg.Pipeline.InputFile = inputFile
	}
	if outputDir != "" {
		cfg.Pipeline.OutputDir = outputDir
	}

	// Входной файл должен существовать до начала любой работы
	if _, err := os.Stat(cfg.GetInputFile()); err != nil {
		return fmt.Errorf("входной файл %s не найден", cfg.GetInputFile())
	}

	// Инициализируем сервисы
	fmt.Println("🔧 Инициализация сервисов...")

	client := api.NewOpenAIClient(openaiCfg)
	m := metrics.NewMetrics()

	runner := pipeline.New(
		pipeline.Config{
			InputFile: cfg.GetInputFile(),
			OutputDir: cfg.GetOutputDir(),
		},
		persona.NewGenerator(client),
		qa.NewGenerator(client),
		m,
	)

	fmt.Printf("✅ Сервисы инициализированы (модель: %s)\n\n", openaiCfg.Model)

	summary, err := runner.Run()
	if err != nil {
		return err
	}

	// Итоги запуска
	fmt.Println("\n🎉 Обработка завершена!")
	fmt.Printf("• Персона: %s\n", summary.PersonaName)
	fmt.Printf("• Всего вопросов: %d\n", summary.Total)
	fmt.Printf("• Успешно: %d\n", summary.Succeeded)
	fmt.Printf("• С ошибками: %d\n", summary.Errored)
	fmt.Printf("• Профиль персоны: %s\n", summary.PersonaPath)
	fmt.Printf("• Датасет: %s\n", summary.OutputPath)

	snapshot := m.GetSnapshot()
	fmt.Printf("• Вызовов API: %d (успешных: %d)\n", snapshot.APICallsTotal, snapshot.APICallsSuccessful)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
