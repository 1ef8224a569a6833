package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeEnvFile_SynthesizesDefaults(t *testing.T) {
	dir := t.TempDir()

	created, err := MaterializeEnvFile(dir)
	require.NoError(t, err)
	assert.True(t, created)

	vars, err := ReadEnvFile(dir)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", vars["HOST"])
	assert.Equal(t, "8000", vars["PORT"])
	assert.Equal(t, "false", vars["DEBUG"])
	assert.Equal(t, "kor+eng", vars["OCR_LANGUAGES"])
	assert.Equal(t, "gemma3:27b-it-qat", vars["OLLAMA_DEFAULT_MODEL"])
	assert.Len(t, vars["SECRET_KEY"], 64)
}

func TestMaterializeEnvFile_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, EnvFileName)
	require.NoError(t, os.WriteFile(path, []byte("PORT=9999\n"), 0o600))

	created, err := MaterializeEnvFile(dir)
	require.NoError(t, err)
	assert.False(t, created)

	vars, err := ReadEnvFile(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"PORT": "9999"}, vars)
}

func TestMaterializeEnvFile_CopiesTemplate(t *testing.T) {
	dir := t.TempDir()
	template := "HOST=127.0.0.1\nPORT=8080\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvExampleName), []byte(template), 0o644))

	created, err := MaterializeEnvFile(dir)
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(filepath.Join(dir, EnvFileName))
	require.NoError(t, err)
	assert.Equal(t, template, string(data))
}

func TestNewSecret_Unique(t *testing.T) {
	a, err := NewSecret()
	require.NoError(t, err)
	b, err := NewSecret()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
