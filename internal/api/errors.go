package api

import "fmt"

// GenerationError — ошибка синтеза по схеме: транспорт, ответ API или
// несоответствие схеме. Subject — что генерировали (персона или текст вопроса).
type GenerationError struct {
	Subject string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("ошибка генерации (%s): %v", e.Subject, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
