package dataset

import (
	"fmt"
	"os"
	"strings"

	"clone-me-generator/internal/qa"
)

// Columns — фиксированный заголовок выходного датасета
var Columns = []string{"Category", "Question", "Response", "Reasoning", "Persona"}

// ErrorPrefix — маркер в колонке Response для строк с ошибкой генерации
const ErrorPrefix = "ERROR: "

// Writer владеет выходным CSV файлом. Каждая строка дописывается по циклу
// открыть-дописать-синхронизировать-закрыть, поэтому падение после строки k
// оставляет строки 1..k целыми и читаемыми, без оборванного хвоста.
type Writer struct {
	path string
}

// NewWriter создает выходной файл заново (каждый запуск начинается с чистого
// файла) и сразу записывает строку заголовка
func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания файла %s: %w", path, err)
	}

	if _, err := f.WriteString(encodeRow(Columns)); err != nil {
		f.Close()
		return nil, fmt.Errorf("ошибка записи заголовка: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return nil, fmt.Errorf("ошибка синхронизации файла %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("ошибка закрытия файла %s: %w", path, err)
	}

	return &Writer{path: path}, nil
}

// Path возвращает путь к выходному файлу
func (w *Writer) Path() string {
	return w.path
}

// AppendSuccess дописывает строку с успешно сгенерированным ответом
func (w *Writer) AppendSuccess(category string, pair *qa.Pair, personaName string) error {
	return w.appendRow([]string{category, pair.Question, pair.Response, pair.Reasoning, personaName})
}

// AppendError дописывает строку-заглушку для вопроса, на котором генерация
// не удалась: исходный текст вопроса, описание ошибки и пустой Reasoning
func (w *Writer) AppendError(category, question, errMsg, personaName string) error {
	return w.appendRow([]string{category, question, ErrorPrefix + errMsg, "", personaName})
}

// appendRow дописывает ровно одну строку и гарантирует, что она на диске
// до возврата
func (w *Writer) appendRow(fields []string) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла %s: %w", w.path, err)
	}

	if _, err := f.WriteString(encodeRow(fields)); err != nil {
		f.Close()
		return fmt.Errorf("ошибка записи строки: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("ошибка синхронизации файла %s: %w", w.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия файла %s: %w", w.path, err)
	}

	return nil
}

// encodeRow кодирует одну CSV строку: каждое поле целиком берется в кавычки,
// кавычка внутри поля экранируется удвоением. encoding/csv так не умеет
// (он квотит только по необходимости), поэтому кодируем сами; читается
// результат любым стандартным CSV-парсером байт-в-байт.
func encodeRow(fields []string) string {
	var row strings.Builder

	for i, field := range fields {
		if i > 0 {
			row.WriteByte(',')
		}
		row.WriteByte('"')
		row.WriteString(strings.ReplaceAll(field, `"`, `""`))
		row.WriteByte('"')
	}
	row.WriteByte('\n')

	return row.String()
}
