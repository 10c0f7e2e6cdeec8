package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/podctl/internal/config"
	"github.com/imamik/podctl/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	wizardFileExists       = wizard.FileExists
	wizardConfirmOverwrite = wizard.ConfirmOverwrite
	wizardRunWizard        = wizard.RunWizard
	wizardBuildConfig      = wizard.BuildConfig
	wizardWriteConfig      = wizard.WriteConfig
)

// Init runs the configuration wizard and writes the result to outputPath.
func Init(ctx context.Context, outputPath string, advanced, fullOutput bool) error {
	if wizardFileExists(outputPath) {
		overwrite, err := wizardConfirmOverwrite(outputPath)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !overwrite {
			fmt.Println("Aborted.")
			return nil
		}
	}

	printWelcome(advanced, fullOutput)

	result, err := wizardRunWizard(ctx, advanced)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg, err := wizardBuildConfig(result)
	if err != nil {
		return fmt.Errorf("failed to build config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := wizardWriteConfig(cfg, outputPath, fullOutput); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome(advanced, fullOutput bool) {
	fmt.Println()
	printTitle("podctl - STT service on RunPod")
	fmt.Println("==============================")
	fmt.Println()
	fmt.Println("This wizard will help you create a deployment configuration.")
	if advanced {
		fmt.Println("Running in advanced mode.")
	}
	if fullOutput {
		fmt.Println("Full output mode: every option is written.")
	} else {
		fmt.Println("Minimal output mode: only essential values are written.")
	}
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	printSuccess("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Deployment Summary")
	fmt.Println("------------------")
	fmt.Printf("  Image:  %s\n", cfg.Image)
	fmt.Printf("  GPU:    %d x %s (%s)\n", cfg.GPUCount, cfg.GPUType, cfg.CloudType)
	fmt.Printf("  Disk:   %d GB\n", cfg.ContainerDiskGB)
	fmt.Printf("  Model:  %s\n", cfg.Model)
	if cfg.Archive.Enabled() {
		fmt.Printf("  Archive: s3://%s/%s\n", cfg.Archive.Bucket, cfg.Archive.Prefix)
	}
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Set your RunPod API key:")
	fmt.Printf("     export %s=<your-api-key>\n", config.CredentialEnvVar)
	fmt.Println()
	fmt.Printf("  2. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  3. Deploy:")
	if outputPath == config.DefaultConfigFile {
		fmt.Println("     podctl deploy")
	} else {
		fmt.Printf("     podctl deploy -c %s\n", outputPath)
	}
	fmt.Println()
}
