package config

import "strconv"

const (
	// DefaultConfigFile is looked up in the working directory when no
	// --config flag is given.
	DefaultConfigFile = "podctl.yaml"

	// DefaultRecordPath is where the deployment record is written.
	DefaultRecordPath = "runpod_stt_pod_info.json"

	// DefaultAPIURL is the RunPod GraphQL endpoint.
	DefaultAPIURL = "https://api.runpod.io/graphql"

	// DefaultImage is the WhisperLiveKit STT service image.
	DefaultImage = "ghcr.io/emmanuelsalami/whisperlivekit-stt-service:latest"

	// DefaultModel is the Whisper model the server is started with.
	DefaultModel = "base.en"
)

// defaultEnv is passed to the container unless the config sets env.
func defaultEnv() map[string]string {
	return map[string]string{
		"PYTHONUNBUFFERED": "1",
		"HF_HOME":          "/runpod-volume/.cache/huggingface",
	}
}

// defaultCommand starts the WhisperLiveKit server for model on port.
func defaultCommand(model string, port int) []string {
	return []string{
		"whisperlivekit-server",
		"--host", "0.0.0.0",
		"--port", strconv.Itoa(port),
		"--model", model,
		"--language", "auto",
	}
}
