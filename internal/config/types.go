package config

// Config представляет конфигурацию пайплайна генерации
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// PipelineConfig содержит пути данных одного запуска
type PipelineConfig struct {
	InputFile string `yaml:"input_file"`
	OutputDir string `yaml:"output_dir"`
}

// Методы для удобного доступа к конфигурации
func (c *Config) GetInputFile() string {
	return c.Pipeline.InputFile
}

func (c *Config) GetOutputDir() string {
	return c.Pipeline.OutputDir
}
