package wizard

import (
	"context"
	"fmt"
)

// WizardResult holds all the answers from the interactive wizard.
type WizardResult struct {
	Image string

	// Hardware
	GPUType         string
	GPUCount        int
	CloudType       string
	ContainerDiskGB int

	Model string

	// Advanced options (only set in advanced mode)
	AdvancedOptions *AdvancedOptions
}

// AdvancedOptions holds advanced configuration options.
type AdvancedOptions struct {
	MaxAttempts int

	// Record archive; disabled while ArchiveBucket is empty.
	ArchiveBucket   string
	ArchiveEndpoint string
}

// RunWizard runs the interactive configuration wizard.
// If advanced is true, additional configuration options are shown.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context, advanced bool) (*WizardResult, error) {
	result := &WizardResult{}

	if err := runImageGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}

	if err := runHardwareGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	if err := runModelGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	if advanced {
		advOpts := &AdvancedOptions{}

		if err := runReadinessGroup(ctx, advOpts); err != nil {
			return nil, fmt.Errorf("readiness: %w", err)
		}

		if err := runArchiveGroup(ctx, advOpts); err != nil {
			return nil, fmt.Errorf("archive: %w", err)
		}

		result.AdvancedOptions = advOpts
	}

	return result, nil
}
