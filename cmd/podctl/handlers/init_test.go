package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/podctl/internal/config"
	"github.com/imamik/podctl/internal/config/wizard"
)

// saveAndRestoreInitFactories saves and restores init factory functions.
func saveAndRestoreInitFactories(t *testing.T) {
	origFileExists := wizardFileExists
	origConfirmOverwrite := wizardConfirmOverwrite
	origRunWizard := wizardRunWizard
	origBuildConfig := wizardBuildConfig
	origWriteConfig := wizardWriteConfig

	t.Cleanup(func() {
		wizardFileExists = origFileExists
		wizardConfirmOverwrite = origConfirmOverwrite
		wizardRunWizard = origRunWizard
		wizardBuildConfig = origBuildConfig
		wizardWriteConfig = origWriteConfig
	})
}

func testWizardResult() *wizard.WizardResult {
	return &wizard.WizardResult{
		Image:           config.DefaultImage,
		GPUType:         "NVIDIA GeForce RTX 4090",
		GPUCount:        1,
		CloudType:       "SECURE",
		ContainerDiskGB: 30,
		Model:           "small",
	}
}

func TestInit_Success(t *testing.T) {
	saveAndRestoreInitFactories(t)

	var written *config.Config
	var writtenPath string
	wizardFileExists = func(string) bool { return false }
	wizardRunWizard = func(context.Context, bool) (*wizard.WizardResult, error) {
		return testWizardResult(), nil
	}
	wizardWriteConfig = func(cfg *config.Config, path string, _ bool) error {
		written, writtenPath = cfg, path
		return nil
	}

	output := captureOutput(func() {
		require.NoError(t, Init(context.Background(), "podctl.yaml", false, false))
	})

	require.NotNil(t, written)
	assert.Equal(t, "podctl.yaml", writtenPath)
	assert.Equal(t, "small", written.Model)
	assert.Contains(t, output, "Minimal output mode")
	assert.Contains(t, output, "Configuration saved!")
	assert.Contains(t, output, "1 x NVIDIA GeForce RTX 4090 (SECURE)")
	assert.Contains(t, output, "export RUNPOD_API_KEY=<your-api-key>")
	assert.Contains(t, output, "     podctl deploy\n")
}

func TestInit_OverwriteDeclined(t *testing.T) {
	saveAndRestoreInitFactories(t)

	wizardFileExists = func(string) bool { return true }
	wizardConfirmOverwrite = func(string) (bool, error) { return false, nil }
	wizardRunWizard = func(context.Context, bool) (*wizard.WizardResult, error) {
		t.Fatal("wizard must not run")
		return nil, nil
	}

	output := captureOutput(func() {
		require.NoError(t, Init(context.Background(), "podctl.yaml", false, false))
	})
	assert.Contains(t, output, "Aborted.")
}

func TestInit_Errors(t *testing.T) {
	t.Run("wizard canceled", func(t *testing.T) {
		saveAndRestoreInitFactories(t)
		wizardFileExists = func(string) bool { return false }
		wizardRunWizard = func(context.Context, bool) (*wizard.WizardResult, error) {
			return nil, errors.New("user aborted")
		}

		var err error
		captureOutput(func() { err = Init(context.Background(), "podctl.yaml", true, false) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wizard canceled")
	})

	t.Run("write fails", func(t *testing.T) {
		saveAndRestoreInitFactories(t)
		wizardFileExists = func(string) bool { return false }
		wizardRunWizard = func(context.Context, bool) (*wizard.WizardResult, error) {
			return testWizardResult(), nil
		}
		wizardWriteConfig = func(*config.Config, string, bool) error {
			return errors.New("permission denied")
		}

		var err error
		captureOutput(func() { err = Init(context.Background(), "custom.yaml", false, true) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write config")
	})
}

func TestPrintInitSuccess_CustomPath(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Archive.Bucket = "pods"

	output := captureOutput(func() {
		printInitSuccess("custom.yaml", cfg)
	})

	assert.Contains(t, output, "podctl deploy -c custom.yaml")
	assert.Contains(t, output, "Archive: s3://pods/deployments/")
}
