package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"clone-me-generator/internal/qa"
)

// ReadQuestions читает весь входной опросник в память до начала запуска.
// Порядок строк входного файла определяет порядок строк выходного.
func ReadQuestions(path string) ([]qa.InputQuestion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга CSV %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("входной файл %s пуст", path)
	}

	// Ищем обязательные колонки в заголовке, лишние колонки игнорируем
	categoryIdx, questionIdx := -1, -1
	for i, column := range records[0] {
		switch column {
		case "Category":
			categoryIdx = i
		case "Question":
			questionIdx = i
		}
	}

	if categoryIdx == -1 {
		return nil, fmt.Errorf("во входном файле %s отсутствует колонка Category", path)
	}

	if questionIdx == -1 {
		return nil, fmt.Errorf("во входном файле %s отсутствует колонка Question", path)
	}

	var questions []qa.InputQuestion
	for _, row := range records[1:] {
		questions = append(questions, qa.InputQuestion{
			Category: row[categoryIdx],
			Question: row[questionIdx],
		})
	}

	return questions, nil
}
