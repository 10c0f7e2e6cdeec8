// Package wizard provides an interactive configuration wizard for podctl.
//
// It uses charmbracelet/huh forms to ask for the container image, GPU
// hardware and Whisper model, then writes a podctl.yaml. The main entry
// point is RunWizard; BuildConfig converts its answers to a config.Config
// and WriteConfig renders the YAML file.
package wizard
