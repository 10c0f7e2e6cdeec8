package runpod

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

const (
	// DefaultEndpoint is the public RunPod GraphQL endpoint.
	DefaultEndpoint = "https://api.runpod.io/graphql"

	defaultTimeout = 90 * time.Second
	userAgent      = "podctl"
)

// createPodMutation deploys an on-demand pod on any machine matching the input.
const createPodMutation = `mutation CreatePod($input: PodFindAndDeployOnDemandInput) {
  podFindAndDeployOnDemand(input: $input) {
    id
    imageName
    machineId
    desiredStatus
  }
}`

// RealClient implements PodProvisioner using the RunPod GraphQL API.
type RealClient struct {
	client   *resty.Client
	endpoint string
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithEndpoint sets the GraphQL endpoint (useful for testing).
func WithEndpoint(url string) ClientOption {
	return func(c *RealClient) {
		c.endpoint = url
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *RealClient) {
		c.client.SetTimeout(d)
	}
}

// NewRealClient creates a new RealClient authenticating with token.
func NewRealClient(token string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		client: resty.New().
			SetTimeout(defaultTimeout).
			SetAuthToken(token).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", userAgent),
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases idle connections.
func (c *RealClient) Close() error {
	return c.client.Close()
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type createPodResponse struct {
	Data struct {
		Pod *Pod `json:"podFindAndDeployOnDemand"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// podInput is the PodFindAndDeployOnDemandInput payload.
type podInput struct {
	Name              string   `json:"name"`
	ImageName         string   `json:"imageName"`
	GPUTypeID         string   `json:"gpuTypeId"`
	GPUCount          int      `json:"gpuCount"`
	CloudType         string   `json:"cloudType"`
	ContainerDiskInGB int      `json:"containerDiskInGb"`
	VolumeInGB        int      `json:"volumeInGb"`
	VolumeMountPath   string   `json:"volumeMountPath,omitempty"`
	Ports             string   `json:"ports,omitempty"`
	DockerArgs        string   `json:"dockerArgs,omitempty"`
	Env               []EnvVar `json:"env"`
	MinVCPUCount      int      `json:"minVcpuCount"`
	MinMemoryInGB     int      `json:"minMemoryInGb"`
	SupportPublicIP   bool     `json:"supportPublicIp"`
	StartSSH          bool     `json:"startSsh"`
}

func newPodInput(opts PodCreateOpts) podInput {
	gpuCount := opts.GPUCount
	if gpuCount < 1 {
		gpuCount = 1
	}
	cloudType := opts.CloudType
	if cloudType == "" {
		cloudType = "ALL"
	}
	return podInput{
		Name:              opts.Name,
		ImageName:         opts.ImageName,
		GPUTypeID:         opts.GPUTypeID,
		GPUCount:          gpuCount,
		CloudType:         cloudType,
		ContainerDiskInGB: opts.ContainerDiskInGB,
		VolumeInGB:        opts.VolumeInGB,
		VolumeMountPath:   opts.VolumeMountPath,
		Ports:             opts.Ports,
		DockerArgs:        opts.DockerArgs,
		Env:               envVars(opts.Env),
		MinVCPUCount:      1,
		MinMemoryInGB:     1,
		SupportPublicIP:   true,
		StartSSH:          true,
	}
}

// envVars converts env to the API's key/value list, sorted by key.
func envVars(env map[string]string) []EnvVar {
	vars := make([]EnvVar, 0, len(env))
	for k, v := range env {
		vars = append(vars, EnvVar{Key: k, Value: v})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Key < vars[j].Key })
	return vars
}

// CreatePod deploys a pod. The request is sent exactly once.
func (c *RealClient) CreatePod(ctx context.Context, opts PodCreateOpts) (*Pod, error) {
	body := graphQLRequest{
		Query:     createPodMutation,
		Variables: map[string]any{"input": newPodInput(opts)},
	}

	log.WithFields(log.Fields{
		"endpoint": c.endpoint,
		"name":     opts.Name,
		"image":    opts.ImageName,
		"gpu-type": opts.GPUTypeID,
	}).Debug("creating pod")

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("create pod request failed: %w", err)
	}

	raw := resp.String()
	log.WithFields(log.Fields{
		"status": statusText(resp.StatusCode()),
		"body":   raw,
	}).Debug("create pod response")

	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Messages: graphQLMessages(raw), Raw: raw}
	}

	var out createPodResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("failed to decode create pod response %q: %w", raw, err)
	}

	if len(out.Errors) > 0 {
		msgs := make([]string, 0, len(out.Errors))
		for _, e := range out.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, &APIError{StatusCode: resp.StatusCode(), Messages: msgs, Raw: raw}
	}

	if out.Data.Pod == nil || out.Data.Pod.ID == "" {
		return nil, fmt.Errorf("%w (response: %s)", ErrNoPodID, raw)
	}

	return out.Data.Pod, nil
}

// graphQLMessages extracts error messages from an error body, if it is a
// GraphQL error document.
func graphQLMessages(raw string) []string {
	var out struct {
		Errors []graphQLError `json:"errors"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	msgs := make([]string, 0, len(out.Errors))
	for _, e := range out.Errors {
		if e.Message != "" {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

var _ PodProvisioner = (*RealClient)(nil)

func statusText(code int) string {
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}
