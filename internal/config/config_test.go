package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, "", cfg.Escape)
	assert.Equal(t, 4, cfg.Output.Indent)
	assert.True(t, cfg.Output.Overwrite)
	assert.Equal(t, CaseOriginal, cfg.Naming.HeaderCase)
	assert.False(t, cfg.Dev.Debug)
}

func TestConfig_LoadFromYAML(t *testing.T) {
	yamlContent := `
delimiter: ";"
escape: "\\"
output:
  indent: 2
  overwrite: false
naming:
  header_case: snake
dev:
  debug: true
`

	tmpFile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(yamlContent)
	require.NoError(t, err)
	_ = tmpFile.Close()

	cfg, err := LoadConfig(tmpFile.Name())
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, `\`, cfg.Escape)
	assert.Equal(t, 2, cfg.Output.Indent)
	assert.False(t, cfg.Output.Overwrite)
	assert.Equal(t, CaseSnake, cfg.Naming.HeaderCase)
	assert.True(t, cfg.Dev.Debug)
}

func TestConfig_LoadInvalidHeaderCase(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString("naming:\n  header_case: shouting\n")
	require.NoError(t, err)
	_ = tmpFile.Close()

	_, err = LoadConfig(tmpFile.Name())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "header_case")
}

func TestConfig_LoadMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestConfig_FieldName(t *testing.T) {
	tests := []struct {
		headerCase string
		header     string
		expected   string
	}{
		{CaseOriginal, "First Name", "First Name"},
		{CaseSnake, "First Name", "first_name"},
		{CaseSnake, "createdAt", "created_at"},
		{CaseCamel, "first_name", "firstName"},
		{CasePascal, "first_name", "FirstName"},
	}

	for _, tt := range tests {
		cfg := NewConfig()
		cfg.Naming.HeaderCase = tt.headerCase
		assert.Equal(t, tt.expected, cfg.FieldName(tt.header),
			"header %q with case %q", tt.header, tt.headerCase)
	}
}

func TestFindConfigFile_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	configPath := filepath.Join(root, ".filefmt.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("delimiter: \";\"\n"), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(cwd) }()

	require.NoError(t, os.Chdir(nested))
	found := FindConfigFile()

	// Resolve symlinks so the comparison survives /tmp redirection.
	expected, err := filepath.EvalSymlinks(configPath)
	require.NoError(t, err)
	actual, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}
