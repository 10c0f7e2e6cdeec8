package config

import (
	"time"
)

// Config holds the deployment configuration.
type Config struct {
	// NamePrefix is prepended to the minute-resolution timestamp that names each pod.
	NamePrefix string `default:"whisper-stt" validate:"required" yaml:"name_prefix"`

	Image           string `default:"ghcr.io/emmanuelsalami/whisperlivekit-stt-service:latest" validate:"required" yaml:"image"`
	GPUType         string `default:"NVIDIA GeForce RTX 5090" validate:"required" yaml:"gpu_type"`
	GPUCount        int    `default:"1" validate:"gte=1" yaml:"gpu_count"`
	CloudType       string `default:"ALL" validate:"oneof=ALL SECURE COMMUNITY" yaml:"cloud_type"`
	ContainerDiskGB int    `default:"20" validate:"gte=1" yaml:"container_disk_gb"`
	VolumeMountPath string `default:"/runpod-volume" validate:"required,startswith=/" yaml:"volume_mount_path"`

	// Port and Protocol form the exposed port spec, e.g. "8000/http".
	Port     int    `default:"8000" validate:"gte=1,lte=65535" yaml:"port"`
	Protocol string `default:"http" validate:"oneof=http tcp" yaml:"protocol"`

	// Model is recorded alongside the deployment; it is also the default
	// --model argument of Command.
	Model string `default:"base.en" validate:"required" yaml:"model"`

	Env     map[string]string `yaml:"env"`
	Command []string          `yaml:"command"`

	// ProxyDomain and StreamPath derive the access URLs from the pod id.
	ProxyDomain string `default:"proxy.runpod.net" validate:"required,fqdn" yaml:"proxy_domain"`
	StreamPath  string `default:"/asr" validate:"required,startswith=/" yaml:"stream_path"`

	RecordPath string `default:"runpod_stt_pod_info.json" validate:"required" yaml:"record_path"`

	API       APIConfig       `yaml:"api"`
	Readiness ReadinessConfig `yaml:"readiness"`
	Archive   ArchiveConfig   `yaml:"archive"`
}

// APIConfig configures the provisioning API client.
type APIConfig struct {
	URL     string        `default:"https://api.runpod.io/graphql" validate:"required,url" yaml:"url"`
	Timeout time.Duration `default:"90s" validate:"gt=0s" yaml:"timeout"`
}

// ReadinessConfig configures the readiness poll loop.
type ReadinessConfig struct {
	MaxAttempts    int           `default:"180" validate:"gte=1" yaml:"max_attempts"`
	Interval       time.Duration `default:"10s" validate:"gte=0s" yaml:"interval"`
	RequestTimeout time.Duration `default:"10s" validate:"gt=0s" yaml:"request_timeout"`
}

// ArchiveConfig configures the optional upload of deployment records to
// S3-compatible storage. Archiving is disabled while Bucket is empty.
type ArchiveConfig struct {
	Bucket   string `yaml:"bucket,omitempty"`
	Endpoint string `validate:"omitempty,url" yaml:"endpoint,omitempty"`
	Region   string `default:"us-east-1" yaml:"region,omitempty"`
	Prefix   string `default:"deployments/" yaml:"prefix,omitempty"`
}

// Enabled reports whether records should be archived.
func (a ArchiveConfig) Enabled() bool {
	return a.Bucket != ""
}

// SetDefaults fills the composite fields struct tags cannot express.
// It is invoked by defaults.Set.
func (c *Config) SetDefaults() {
	if c.Env == nil {
		c.Env = defaultEnv()
	}
	if c.Command == nil {
		c.Command = defaultCommand(c.Model, c.Port)
	}
}
