package runpod

import (
	"context"
)

// EnvVar is a container environment variable in the shape the API expects.
type EnvVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PodCreateOpts holds all parameters for creating an on-demand pod.
type PodCreateOpts struct {
	Name              string
	ImageName         string
	GPUTypeID         string
	GPUCount          int
	CloudType         string
	ContainerDiskInGB int
	VolumeInGB        int
	VolumeMountPath   string
	Ports             string // e.g. "8000/http"
	Env               map[string]string
	DockerArgs        string
}

// Pod is the subset of pod fields returned on creation.
type Pod struct {
	ID            string `json:"id"`
	ImageName     string `json:"imageName"`
	MachineID     string `json:"machineId"`
	DesiredStatus string `json:"desiredStatus"`
}

// PodProvisioner creates pods.
type PodProvisioner interface {
	// CreatePod submits exactly one creation request. It returns an error
	// wrapping ErrNoPodID when the response carries no pod id.
	CreatePod(ctx context.Context, opts PodCreateOpts) (*Pod, error)
}
