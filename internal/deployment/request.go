package deployment

import (
	"maps"
	"slices"
	"strings"

	"github.com/imamik/podctl/internal/config"
	"github.com/imamik/podctl/internal/platform/runpod"
	"github.com/imamik/podctl/internal/util/naming"
)

// Request describes the pod to provision. It is built once from
// configuration and never mutated.
type Request struct {
	NamePrefix      string
	Image           string
	GPUType         string
	GPUCount        int
	CloudType       string
	ContainerDiskGB int
	VolumeMountPath string
	Port            int
	Protocol        string
	Env             map[string]string
	Command         []string
	Model           string

	ProxyDomain string
	StreamPath  string
}

// NewRequest builds a Request from cfg. Env and Command are copied so later
// changes to cfg do not leak into the request.
func NewRequest(cfg *config.Config) Request {
	return Request{
		NamePrefix:      cfg.NamePrefix,
		Image:           cfg.Image,
		GPUType:         cfg.GPUType,
		GPUCount:        cfg.GPUCount,
		CloudType:       cfg.CloudType,
		ContainerDiskGB: cfg.ContainerDiskGB,
		VolumeMountPath: cfg.VolumeMountPath,
		Port:            cfg.Port,
		Protocol:        cfg.Protocol,
		Env:             maps.Clone(cfg.Env),
		Command:         slices.Clone(cfg.Command),
		Model:           cfg.Model,
		ProxyDomain:     cfg.ProxyDomain,
		StreamPath:      cfg.StreamPath,
	}
}

// PortSpec returns the exposed port declaration, e.g. "8000/http".
func (r Request) PortSpec() string {
	return naming.PortSpec(r.Port, r.Protocol)
}

// DockerArgs returns the startup command flattened into one string.
func (r Request) DockerArgs() string {
	return strings.Join(r.Command, " ")
}

func (r Request) createOpts(name string) runpod.PodCreateOpts {
	return runpod.PodCreateOpts{
		Name:              name,
		ImageName:         r.Image,
		GPUTypeID:         r.GPUType,
		GPUCount:          r.GPUCount,
		CloudType:         r.CloudType,
		ContainerDiskInGB: r.ContainerDiskGB,
		VolumeMountPath:   r.VolumeMountPath,
		Ports:             r.PortSpec(),
		Env:               maps.Clone(r.Env),
		DockerArgs:        r.DockerArgs(),
	}
}
