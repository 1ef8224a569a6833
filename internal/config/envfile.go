package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// EnvFileName is the environment file the stack reads at start.
	EnvFileName = ".env"
	// EnvExampleName is the template copied when present.
	EnvExampleName = ".env.example"
)

// defaultEnv returns the synthesized environment for a fresh install.
func defaultEnv(secret string) map[string]string {
	return map[string]string{
		"HOST":                 "0.0.0.0",
		"PORT":                 "8000",
		"DEBUG":                "false",
		"SECRET_KEY":           secret,
		"CORS_ORIGINS":         "http://localhost:8000",
		"MAX_FILE_SIZE":        "100",
		"ALLOWED_EXTENSIONS":   ".pdf",
		"OCR_LANGUAGES":        "kor+eng",
		"OCR_DPI":              "300",
		"OCR_MAX_WORKERS":      "8",
		"OLLAMA_API_URL":       "http://host.docker.internal:11434/api/generate",
		"OLLAMA_DEFAULT_MODEL": "gemma3:27b-it-qat",
		"LLM_TEMPERATURE":      "0.5",
		"EMBEDDING_BATCH_SIZE": "32",
		"CACHE_TTL":            "3600",
		"LOG_LEVEL":            "INFO",
	}
}

// NewSecret returns a freshly generated 32-byte hex-encoded secret.
func NewSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// MaterializeEnvFile ensures projectDir has an environment file. An existing
// file is never touched. When a template exists it is copied verbatim,
// otherwise a default file with a fresh secret is synthesized.
// It reports whether a file was created.
func MaterializeEnvFile(projectDir string) (bool, error) {
	dst := filepath.Join(projectDir, EnvFileName)
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", dst, err)
	}

	example := filepath.Join(projectDir, EnvExampleName)
	if data, err := os.ReadFile(example); err == nil {
		if err := os.WriteFile(dst, data, 0o600); err != nil {
			return false, fmt.Errorf("copy %s to %s: %w", EnvExampleName, EnvFileName, err)
		}
		return true, nil
	}

	secret, err := NewSecret()
	if err != nil {
		return false, err
	}
	if err := godotenv.Write(defaultEnv(secret), dst); err != nil {
		return false, fmt.Errorf("write %s: %w", EnvFileName, err)
	}
	return true, nil
}

// ReadEnvFile parses the project's environment file into a key-value map.
func ReadEnvFile(projectDir string) (map[string]string, error) {
	return godotenv.Read(filepath.Join(projectDir, EnvFileName))
}
