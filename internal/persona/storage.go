package persona

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const profilePrefix = "persona_profile_"

// NormalizeName приводит имя персоны к виду для имен файлов:
// нижний регистр, пробелы заменяются подчеркиваниями
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Save сохраняет профиль персоны в JSON файл и возвращает путь к нему.
// Файл пишется один раз за запуск и больше не обновляется.
func Save(dir string, profile *Profile) (string, error) {
	// Создаем директорию если её нет
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return "", fmt.Errorf("ошибка создания директории %s: %w", dir, err)
	}

	// Формируем имя файла из нормализованного имени персоны
	filename := fmt.Sprintf("%s%s.json", profilePrefix, NormalizeName(profile.Name))
	path := filepath.Join(dir, filename)

	// Сериализуем профиль в JSON с отступами
	jsonData, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации профиля: %w", err)
	}

	// Записываем в файл
	err = os.WriteFile(path, jsonData, 0644)
	if err != nil {
		return "", fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}

	return path, nil
}

// Load загружает сохраненный профиль персоны из JSON файла
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", path, err)
	}

	var profile Profile
	err = json.Unmarshal(data, &profile)
	if err != nil {
		return nil, fmt.Errorf("ошибка десериализации JSON: %w", err)
	}

	return &profile, nil
}

// ListProfiles возвращает нормализованные имена всех сохраненных персон
func ListProfiles(dir string) ([]string, error) {
	// Проверяем существование директории
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	// Читаем содержимое директории
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения директории %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		// Извлекаем имя персоны из имени файла
		name := entry.Name()
		if strings.HasPrefix(name, profilePrefix) {
			names = append(names, name[len(profilePrefix):len(name)-5]) // убираем префикс и ".json"
		}
	}

	return names, nil
}
