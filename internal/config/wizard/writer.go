package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imamik/podctl/internal/config"
)

// Function variables for dependency injection in tests.
var (
	confirmOverwrite = defaultConfirmOverwrite
	writeFile        = os.WriteFile
)

// WriteConfig writes the config to a YAML file with a descriptive header.
// If fullOutput is false, only values that differ from the built-in
// defaults (plus the essentials) are written.
func WriteConfig(cfg *config.Config, outputPath string, fullOutput bool) error {
	var yamlBytes []byte
	var err error

	if fullOutput {
		yamlBytes, err = yaml.Marshal(cfg)
	} else {
		yamlBytes, err = yaml.Marshal(buildMinimalConfig(cfg))
	}

	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath, fullOutput))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := writeFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// MinimalConfig represents the minimal configuration for YAML output.
type MinimalConfig struct {
	Image           string                  `yaml:"image"`
	GPUType         string                  `yaml:"gpu_type"`
	GPUCount        int                     `yaml:"gpu_count,omitempty"`
	CloudType       string                  `yaml:"cloud_type,omitempty"`
	ContainerDiskGB int                     `yaml:"container_disk_gb"`
	Model           string                  `yaml:"model"`
	Readiness       *MinimalReadinessConfig `yaml:"readiness,omitempty"`
	Archive         *MinimalArchiveConfig   `yaml:"archive,omitempty"`
}

// MinimalReadinessConfig contains a customized attempt budget.
type MinimalReadinessConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// MinimalArchiveConfig contains archive settings if enabled.
type MinimalArchiveConfig struct {
	Bucket   string `yaml:"bucket"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// buildMinimalConfig creates a minimal config from a full config.
func buildMinimalConfig(cfg *config.Config) *MinimalConfig {
	minCfg := &MinimalConfig{
		Image:           cfg.Image,
		GPUType:         cfg.GPUType,
		ContainerDiskGB: cfg.ContainerDiskGB,
		Model:           cfg.Model,
	}

	if cfg.GPUCount > 1 {
		minCfg.GPUCount = cfg.GPUCount
	}
	if cfg.CloudType != "" && cfg.CloudType != "ALL" {
		minCfg.CloudType = cfg.CloudType
	}

	if cfg.Readiness.MaxAttempts > 0 && cfg.Readiness.MaxAttempts != 180 {
		minCfg.Readiness = &MinimalReadinessConfig{MaxAttempts: cfg.Readiness.MaxAttempts}
	}

	if cfg.Archive.Enabled() {
		minCfg.Archive = &MinimalArchiveConfig{
			Bucket:   cfg.Archive.Bucket,
			Endpoint: cfg.Archive.Endpoint,
		}
	}

	return minCfg
}

// generateHeader creates the YAML file header comment.
func generateHeader(outputPath string, fullOutput bool) string {
	mode := "minimal"
	note := "\n# Note: This is a minimal config. Use --full flag for all options."
	if fullOutput {
		mode = "full"
		note = ""
	}
	return fmt.Sprintf(`# podctl deployment configuration
# Generated by: podctl init
# Generated at: %s
# Output mode: %s%s
#
# Required environment variable:
#   %s - Your RunPod API key
#
# Usage:
#   export %s=<your-api-key>
#   podctl deploy -c %s
`, time.Now().Format(time.RFC3339), mode, note, config.CredentialEnvVar, config.CredentialEnvVar, outputPath)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConfirmOverwrite prompts the user to confirm overwriting an existing file.
func ConfirmOverwrite(path string) (bool, error) {
	return confirmOverwrite(path)
}

// defaultConfirmOverwrite is the default implementation that prompts via stdin.
func defaultConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("\nFile already exists: %s\n", path)
	fmt.Print("Overwrite? (y/n): ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
