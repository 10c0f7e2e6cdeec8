package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// CredentialEnvVar holds the RunPod API key.
const CredentialEnvVar = "RUNPOD_API_KEY"

// ErrMissingCredential is returned when the API key is not set.
var ErrMissingCredential = errors.New(CredentialEnvVar + " environment variable not set")

// LoadEnvFile loads variables from a dotenv file without overriding
// variables already present in the environment.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading env file '%s': %w", path, err)
	}
	return nil
}

// Credential returns the RunPod API key from the environment.
func Credential() (string, error) {
	key := os.Getenv(CredentialEnvVar)
	if key == "" {
		return "", ErrMissingCredential
	}
	return key, nil
}
