package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("Name,PA\n"), 0644))
}

func TestFindMonthlyFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "05_2021.csv")
	writeFile(t, dir, "04_2021.csv")
	writeFile(t, dir, "09_2023.csv")

	d := NewDiscovery(nil)
	sources, skipped, err := d.FindMonthlyFiles(dir)
	require.NoError(t, err)
	require.Empty(t, skipped)
	require.Len(t, sources, 3)

	// Lexicographic by filename for reproducible runs.
	assert.Equal(t, "04_2021.csv", sources[0].Name)
	assert.Equal(t, "05_2021.csv", sources[1].Name)
	assert.Equal(t, "09_2023.csv", sources[2].Name)

	assert.Equal(t, 4, sources[0].Month)
	assert.Equal(t, 2021, sources[0].Year)
	assert.Equal(t, 9, sources[2].Month)
	assert.Equal(t, 2023, sources[2].Year)
	assert.Equal(t, filepath.Join(dir, "04_2021.csv"), sources[0].Path)
}

func TestFindMonthlyFilesSkipsNonConforming(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"single_digit_month", "4_2021.csv"},
		{"two_digit_year", "04_21.csv"},
		{"wrong_extension", "04_2021.CSV"},
		{"extra_prefix", "batting_04_2021.csv"},
		{"not_tabular", "readme.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "06_2022.csv")
			writeFile(t, dir, tt.file)

			sources, skipped, err := NewDiscovery(nil).FindMonthlyFiles(dir)
			require.NoError(t, err)
			require.Len(t, sources, 1)
			assert.Equal(t, "06_2022.csv", sources[0].Name)
			assert.Equal(t, []string{tt.file}, skipped)
		})
	}
}

func TestFindMonthlyFilesNoUsableInput(t *testing.T) {
	t.Run("empty_directory", func(t *testing.T) {
		dir := t.TempDir()
		_, _, err := NewDiscovery(nil).FindMonthlyFiles(dir)
		require.ErrorIs(t, err, ErrNoUsableInput)
		assert.Contains(t, err.Error(), dir)
	})

	t.Run("only_unrecognized_names", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "4_2021.csv")
		writeFile(t, dir, "notes.csv.bak")

		_, skipped, err := NewDiscovery(nil).FindMonthlyFiles(dir)
		require.ErrorIs(t, err, ErrNoUsableInput)
		assert.Len(t, skipped, 2)
	})

	t.Run("missing_directory", func(t *testing.T) {
		_, _, err := NewDiscovery(nil).FindMonthlyFiles(filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoUsableInput)
	})
}

func TestFindMonthlyFilesIgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "04_2021.csv")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "05_2021.csv"), 0755))

	sources, skipped, err := NewDiscovery(nil).FindMonthlyFiles(dir)
	require.NoError(t, err)
	assert.Len(t, sources, 1)
	assert.Empty(t, skipped)
}
