package wizard

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/podctl/internal/config"
)

const maxDiskSizeGB = 2048

// runImageGroup prompts for the container image.
func runImageGroup(ctx context.Context, result *WizardResult) error {
	result.Image = config.DefaultImage

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Container Image").
				Description("Image reference of the STT service").
				Placeholder(config.DefaultImage).
				Value(&result.Image).
				Validate(validateImage),
		).Title("Image"),
	).RunWithContext(ctx)
}

// runHardwareGroup prompts for GPU and disk settings.
func runHardwareGroup(ctx context.Context, result *WizardResult) error {
	result.GPUType = GPUTypes[0].Value
	result.GPUCount = 1
	result.CloudType = "ALL"
	diskInput := "20"

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("GPU Type").
				Description("GPU class the pod is scheduled on").
				Options(GPUTypesToOptions(GPUTypes)...).
				Value(&result.GPUType),
			huh.NewSelect[int]().
				Title("GPU Count").
				Options(GPUCountOptions...).
				Value(&result.GPUCount),
			huh.NewSelect[string]().
				Title("Cloud Type").
				Description("Where RunPod may place the pod").
				Options(CloudTypeOptions...).
				Value(&result.CloudType),
			huh.NewInput().
				Title("Container Disk (GB)").
				Description("Holds the model cache").
				Value(&diskInput).
				Validate(validateDiskSize),
		).Title("Hardware"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	result.ContainerDiskGB, _ = strconv.Atoi(strings.TrimSpace(diskInput))
	return nil
}

// runModelGroup prompts for the Whisper model.
func runModelGroup(ctx context.Context, result *WizardResult) error {
	result.Model = config.DefaultModel

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Whisper Model").
				Description("Model loaded by whisperlivekit-server on startup").
				Options(ModelsToOptions(Models)...).
				Value(&result.Model),
		).Title("Model"),
	).RunWithContext(ctx)
}

// runReadinessGroup prompts for the readiness attempt budget (advanced mode).
func runReadinessGroup(ctx context.Context, opts *AdvancedOptions) error {
	attemptsInput := "180"

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Readiness Attempts").
				Description("Probes sent every 10s before giving up").
				Value(&attemptsInput).
				Validate(validateAttempts),
		).Title("Readiness"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	opts.MaxAttempts, _ = strconv.Atoi(strings.TrimSpace(attemptsInput))
	return nil
}

// runArchiveGroup prompts for the optional record archive (advanced mode).
func runArchiveGroup(ctx context.Context, opts *AdvancedOptions) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Archive Bucket (Optional)").
				Description("S3 bucket receiving a copy of every deployment record. Leave empty to disable.").
				Value(&opts.ArchiveBucket),
			huh.NewInput().
				Title("Archive Endpoint (Optional)").
				Description("S3-compatible endpoint URL. Leave empty for AWS S3.").
				Value(&opts.ArchiveEndpoint).
				Validate(validateEndpoint),
		).Title("Record Archive"),
	).RunWithContext(ctx)
}

// validateImage validates a container image reference.
func validateImage(s string) error {
	if strings.TrimSpace(s) == "" {
		return errImageRequired
	}
	if strings.ContainsAny(s, " \t\n") {
		return errImageInvalid
	}
	return nil
}

// validateDiskSize validates the disk size input.
func validateDiskSize(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errDiskSizeRequired
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > maxDiskSizeGB {
		return errDiskSizeInvalid
	}
	return nil
}

// validateAttempts validates the readiness attempt budget.
func validateAttempts(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errAttemptsInvalid
	}
	return nil
}

// validateEndpoint accepts an empty string or an absolute http(s) URL.
func validateEndpoint(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errEndpointInvalid
	}
	return nil
}
