package subword

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys recognized by ConfigFromEnv.
const (
	envVocabSize = "SUBWORD_VOCAB_SIZE"
	envWorkers   = "SUBWORD_WORKERS"
)

// ConfigFromEnv builds a Config from environment variables, starting from
// DefaultConfig. A .env file found in the working directory or a parent is
// loaded first without overriding variables already set in the environment.
func ConfigFromEnv() (Config, error) {
	_ = loadEnvFile()

	cfg := DefaultConfig()
	if v := os.Getenv(envVocabSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("%s=%q: want a positive integer", envVocabSize, v)
		}
		cfg.TargetVocabSize = n
	}
	if v := os.Getenv(envWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%s=%q: want a non-negative integer", envWorkers, v)
		}
		cfg.Workers = n
	}
	return cfg, nil
}

// loadEnvFile walks up from the working directory looking for a .env file.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil
}
