package wizard

import "github.com/charmbracelet/huh"

// GPUTypeOption represents a RunPod GPU type.
type GPUTypeOption struct {
	Value       string
	Label       string
	Description string
}

// ModelOption represents a Whisper model.
type ModelOption struct {
	Value       string
	Label       string
	Description string
}

// GPUTypes contains GPU types known to run the STT service well.
// Values are RunPod GPU type ids.
var GPUTypes = []GPUTypeOption{
	{Value: "NVIDIA GeForce RTX 5090", Label: "RTX 5090", Description: "32GB VRAM"},
	{Value: "NVIDIA GeForce RTX 4090", Label: "RTX 4090", Description: "24GB VRAM"},
	{Value: "NVIDIA GeForce RTX 3090", Label: "RTX 3090", Description: "24GB VRAM"},
	{Value: "NVIDIA RTX A5000", Label: "RTX A5000", Description: "24GB VRAM"},
	{Value: "NVIDIA L4", Label: "L4", Description: "24GB VRAM, low power"},
	{Value: "NVIDIA A40", Label: "A40", Description: "48GB VRAM"},
}

// Models contains the Whisper models the server can load.
var Models = []ModelOption{
	{Value: "tiny.en", Label: "tiny.en", Description: "Fastest, English only"},
	{Value: "base.en", Label: "base.en", Description: "Default, English only"},
	{Value: "small", Label: "small", Description: "Multilingual"},
	{Value: "medium", Label: "medium", Description: "Multilingual, slower"},
	{Value: "large-v3", Label: "large-v3", Description: "Most accurate, needs 10GB+ VRAM"},
}

// CloudTypeOptions contains RunPod cloud types.
var CloudTypeOptions = []huh.Option[string]{
	huh.NewOption("Any (Recommended)", "ALL"),
	huh.NewOption("Secure Cloud", "SECURE"),
	huh.NewOption("Community Cloud", "COMMUNITY"),
}

// GPUCountOptions contains GPU counts per pod.
var GPUCountOptions = []huh.Option[int]{
	huh.NewOption("1", 1),
	huh.NewOption("2", 2),
	huh.NewOption("4", 4),
}

// GPUTypesToOptions converts GPUTypeOption slice to huh.Option slice.
func GPUTypesToOptions(types []GPUTypeOption) []huh.Option[string] {
	opts := make([]huh.Option[string], len(types))
	for i, g := range types {
		opts[i] = huh.NewOption(g.Label+" - "+g.Description, g.Value)
	}
	return opts
}

// ModelsToOptions converts ModelOption slice to huh.Option slice.
func ModelsToOptions(models []ModelOption) []huh.Option[string] {
	opts := make([]huh.Option[string], len(models))
	for i, m := range models {
		opts[i] = huh.NewOption(m.Label+" - "+m.Description, m.Value)
	}
	return opts
}
