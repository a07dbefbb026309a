package qa

import "fmt"

// InputQuestion представляет одну строку входного опросника
type InputQuestion struct {
	Category string
	Question string
}

// Pair представляет один сгенерированный ответ с обоснованием.
// Question — эхо вопроса в формулировке модели, оно может текстуально
// отличаться от входного вопроса.
type Pair struct {
	Question  string `json:"Question"`
	Response  string `json:"Response"`
	Reasoning string `json:"Reasoning"`
}

// Validate проверяет соответствие пары схеме
func (p *Pair) Validate() error {
	if p.Question == "" {
		return fmt.Errorf("поле Question не может быть пустым")
	}

	if p.Response == "" {
		return fmt.Errorf("поле Response не может быть пустым")
	}

	return nil
}

// Result — результат обработки одного вопроса: либо пара, либо ошибка.
// Ошибка генерации не фатальна для запуска, она превращается в error-строку.
type Result struct {
	Category string
	Question string
	Pair     *Pair
	Err      error
}

// Succeeded сообщает, удалась ли генерация для этого вопроса
func (r *Result) Succeeded() bool {
	return r.Err == nil
}
