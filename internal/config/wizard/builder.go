package wizard

import "github.com/imamik/podctl/internal/config"

// BuildConfig creates a Config from the wizard result. Fields the wizard
// does not ask about keep their built-in defaults.
func BuildConfig(result *WizardResult) (*config.Config, error) {
	cfg, err := config.Default()
	if err != nil {
		return nil, err
	}

	cfg.Image = result.Image
	cfg.GPUType = result.GPUType
	cfg.GPUCount = result.GPUCount
	cfg.CloudType = result.CloudType
	cfg.ContainerDiskGB = result.ContainerDiskGB

	if result.Model != "" && result.Model != cfg.Model {
		cfg.Model = result.Model
		// The default command embeds the model name.
		cfg.Command = nil
		cfg.SetDefaults()
	}

	if result.AdvancedOptions != nil {
		applyAdvancedOptions(cfg, result.AdvancedOptions)
	}

	return cfg, nil
}

// applyAdvancedOptions applies advanced options to the config.
func applyAdvancedOptions(cfg *config.Config, opts *AdvancedOptions) {
	if opts.MaxAttempts > 0 {
		cfg.Readiness.MaxAttempts = opts.MaxAttempts
	}
	if opts.ArchiveBucket != "" {
		cfg.Archive.Bucket = opts.ArchiveBucket
		cfg.Archive.Endpoint = opts.ArchiveEndpoint
	}
}
