package publisher

import (
	"encoding/csv"
	"fmt"
	"os"

	"clone-me-generator/internal/dataset"
)

// ValidationError — причина, по которой файл не годится для публикации
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validate проверяет, что файл пригоден для публикации: существует,
// парсится как CSV, содержит все пять обязательных колонок и хотя бы одну
// строку данных. Возвращается первая нарушенная проверка.
func Validate(path string) error {
	if _, err := os.Stat(path); err != nil {
		return &ValidationError{Reason: fmt.Sprintf("файл %s не найден", path)}
	}

	f, err := os.Open(path)
	if err != nil {
		return &ValidationError{Reason: fmt.Sprintf("файл %s не удалось открыть: %v", path, err)}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return &ValidationError{Reason: fmt.Sprintf("файл %s не является корректным CSV: %v", path, err)}
	}

	if len(records) == 0 {
		return &ValidationError{Reason: fmt.Sprintf("файл %s пуст", path)}
	}

	// Проверяем наличие всех обязательных колонок
	header := make(map[string]bool, len(records[0]))
	for _, column := range records[0] {
		header[column] = true
	}

	for _, required := range dataset.Columns {
		if !header[required] {
			return &ValidationError{Reason: fmt.Sprintf("в файле %s отсутствует обязательная колонка %s", path, required)}
		}
	}

	if len(records) == 1 {
		return &ValidationError{Reason: fmt.Sprintf("файл %s не содержит ни одной строки данных", path)}
	}

	return nil
}
