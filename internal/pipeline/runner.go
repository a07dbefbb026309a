package pipeline

import (
	"fmt"
	"log"
	"path/filepath"

	"clone-me-generator/internal/dataset"
	"clone-me-generator/internal/metrics"
	"clone-me-generator/internal/persona"
	"clone-me-generator/internal/qa"

	"github.com/google/uuid"
)

// Config — явная конфигурация одного запуска, никакого глобального состояния
type Config struct {
	InputFile string
	OutputDir string
}

// PersonaGenerator синтезирует персону запуска
type PersonaGenerator interface {
	Generate() (*persona.Profile, error)
}

// AnswerGenerator отвечает на один вопрос от лица персоны
type AnswerGenerator interface {
	Answer(question string, p *persona.Profile) (*qa.Pair, error)
}

// Runner прогоняет весь пайплайн: персона → сохранение профиля →
// вопросы строго по одному в порядке входного файла
type Runner struct {
	cfg        Config
	personaGen PersonaGenerator
	answerGen  AnswerGenerator
	metrics    *metrics.Metrics
}

// Summary — итог завершенного запуска
type Summary struct {
	RunID       string
	PersonaName string
	PersonaPath string
	OutputPath  string
	Total       int
	Succeeded   int
	Errored     int
}

// New создает раннер пайплайна
func New(cfg Config, personaGen PersonaGenerator, answerGen AnswerGenerator, m *metrics.Metrics) *Runner {
	return &Runner{
		cfg:        cfg,
		personaGen: personaGen,
		answerGen:  answerGen,
		metrics:    m,
	}
}

// Run выполняет один запуск пайплайна. Фатальны только ошибка генерации
// персоны (без персоны отвечать некому, файл не создается вовсе) и ошибки
// записи (долговечность результата гарантировать уже нельзя). Ошибка
// генерации ответа на отдельный вопрос превращается в error-строку,
// и обработка продолжается.
func (r *Runner) Run() (*Summary, error) {
	runID := uuid.New().String()
	log.Printf("Запуск %s: читаю вопросы из %s", runID, r.cfg.InputFile)

	questions, err := dataset.ReadQuestions(r.cfg.InputFile)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения опросника: %w", err)
	}

	// Генерируем персону запуска
	fmt.Println("Генерирую случайную персону...")
	profile, err := r.personaGen.Generate()
	r.metrics.IncrementAPICall(err == nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации персоны: %w", err)
	}
	r.metrics.IncrementPersonasGenerated()

	// Сохраняем профиль сразу после создания, до обработки вопросов
	personaPath, err := persona.Save(r.cfg.OutputDir, profile)
	if err != nil {
		return nil, fmt.Errorf("ошибка сохранения профиля персоны: %w", err)
	}

	printProfile(profile)

	outputName := fmt.Sprintf("qa_output_%s.csv", persona.NormalizeName(profile.Name))
	outputPath := filepath.Join(r.cfg.OutputDir, outputName)

	writer, err := dataset.NewWriter(outputPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания выходного файла: %w", err)
	}

	summary := &Summary{
		RunID:       runID,
		PersonaName: profile.Name,
		PersonaPath: personaPath,
		OutputPath:  outputPath,
		Total:       len(questions),
	}

	// Обрабатываем вопросы строго последовательно, в порядке входного файла
	for i, question := range questions {
		fmt.Printf("\nОбрабатываю вопрос %d/%d\n", i+1, len(questions))
		fmt.Printf("Вопрос: %s\n", question.Question)

		result := r.processQuestion(question, profile)
		r.metrics.IncrementQuestionsProcessed(result.Succeeded())

		if result.Succeeded() {
			if err := writer.AppendSuccess(result.Category, result.Pair, profile.Name); err != nil {
				return nil, fmt.Errorf("ошибка записи строки %d: %w", i+1, err)
			}
			summary.Succeeded++
			fmt.Printf("✓ Ответ на вопрос %d обработан и сохранен\n", i+1)
		} else {
			log.Printf("Ошибка обработки вопроса %d: %v", i+1, result.Err)
			if err := writer.AppendError(result.Category, result.Question, result.Err.Error(), profile.Name); err != nil {
				return nil, fmt.Errorf("ошибка записи строки %d: %w", i+1, err)
			}
			summary.Errored++
		}
	}

	return summary, nil
}

// processQuestion превращает вызов генератора в явный результат:
// успех либо зафиксированная ошибка, запуск не прерывается
func (r *Runner) processQuestion(question qa.InputQuestion, profile *persona.Profile) *qa.Result {
	pair, err := r.answerGen.Answer(question.Question, profile)
	r.metrics.IncrementAPICall(err == nil)

	if err != nil {
		return &qa.Result{
			Category: question.Category,
			Question: question.Question,
			Err:      err,
		}
	}

	return &qa.Result{
		Category: question.Category,
		Question: question.Question,
		Pair:     pair,
	}
}

// printProfile выводит сгенерированную персону в консоль
func printProfile(p *persona.Profile) {
	fmt.Println("\nСгенерированная персона:")
	fmt.Printf("Имя: %s\n", p.Name)
	fmt.Printf("Возраст: %d\n", p.Age)
	fmt.Printf("Профессия: %s\n", p.Occupation)
	fmt.Printf("Место жительства: %s\n", p.Location)
	fmt.Printf("Биография: %s\n", p.Background)
	fmt.Println()
}
