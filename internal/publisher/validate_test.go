package publisher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validCSV = `"Category","Question","Response","Reasoning","Persona"
"Hobbies","What do you do for fun?","I garden.","Her background as a retired florist...","Laura Mitchell"
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(writeDataset(t, validCSV)))
}

func TestValidateFileNotFound(t *testing.T) {
	err := Validate(filepath.Join(t.TempDir(), "net.csv"))
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Contains(t, vErr.Reason, "не найден")
}

func TestValidateEmptyFile(t *testing.T) {
	err := Validate(writeDataset(t, ""))
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Contains(t, vErr.Reason, "пуст")
}

func TestValidateMissingColumn(t *testing.T) {
	// Каждая из пяти колонок обязательна, причина называет пропавшую
	columns := []string{"Category", "Question", "Response", "Reasoning", "Persona"}

	headers := map[string]string{
		"Category":  `"Question","Response","Reasoning","Persona"`,
		"Question":  `"Category","Response","Reasoning","Persona"`,
		"Response":  `"Category","Question","Reasoning","Persona"`,
		"Reasoning": `"Category","Question","Response","Persona"`,
		"Persona":   `"Category","Question","Response","Reasoning"`,
	}

	for _, missing := range columns {
		t.Run(missing, func(t *testing.T) {
			err := Validate(writeDataset(t, headers[missing]+"\n\"a\",\"b\",\"c\",\"d\"\n"))
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Contains(t, vErr.Reason, missing)
		})
	}
}

func TestValidateNoDataRows(t *testing.T) {
	err := Validate(writeDataset(t, `"Category","Question","Response","Reasoning","Persona"`+"\n"))
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Contains(t, vErr.Reason, "ни одной строки данных")
}

func TestValidateBrokenCSV(t *testing.T) {
	err := Validate(writeDataset(t, "\"оборванная кавычка,x\n\"a\",\"b\"\n"))
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Contains(t, vErr.Reason, "CSV")
}

func TestValidateExtraColumnsAllowed(t *testing.T) {
	content := `"Category","Question","Response","Reasoning","Persona","Extra"
"a","b","c","d","e","f"
`
	require.NoError(t, Validate(writeDataset(t, content)))
}
