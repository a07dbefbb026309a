package persona

import "fmt"

// Profile представляет синтетическую личность одного запуска.
// После генерации профиль не изменяется — именно это дает
// согласованность ответов между вопросами.
type Profile struct {
	Name              string   `json:"name"`
	Age               int      `json:"age"`
	Occupation        string   `json:"occupation"`
	Location          string   `json:"location"`
	Background        string   `json:"background"`
	PersonalityTraits []string `json:"personality_traits"`
	LifeExperiences   []string `json:"life_experiences"`
	Values            []string `json:"values"`
}

// Validate проверяет соответствие профиля схеме
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("поле name не может быть пустым")
	}

	if p.Age <= 0 {
		return fmt.Errorf("поле age должно быть больше 0, получено %d", p.Age)
	}

	if p.Occupation == "" {
		return fmt.Errorf("поле occupation не может быть пустым")
	}

	if p.Location == "" {
		return fmt.Errorf("поле location не может быть пустым")
	}

	if p.Background == "" {
		return fmt.Errorf("поле background не может быть пустым")
	}

	if len(p.PersonalityTraits) == 0 {
		return fmt.Errorf("список personality_traits не может быть пустым")
	}

	if len(p.LifeExperiences) == 0 {
		return fmt.Errorf("список life_experiences не может быть пустым")
	}

	if len(p.Values) == 0 {
		return fmt.Errorf("список values не может быть пустым")
	}

	return nil
}
