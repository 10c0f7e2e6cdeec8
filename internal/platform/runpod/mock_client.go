package runpod

import (
	"context"
)

// MockClient is a PodProvisioner for tests. CreatePodFunc defaults to
// returning a pod with id "mock-id".
type MockClient struct {
	CreatePodFunc func(ctx context.Context, opts PodCreateOpts) (*Pod, error)

	// Calls records every request in order.
	Calls []PodCreateOpts
}

// CreatePod records opts and delegates to CreatePodFunc.
func (m *MockClient) CreatePod(ctx context.Context, opts PodCreateOpts) (*Pod, error) {
	m.Calls = append(m.Calls, opts)
	if m.CreatePodFunc != nil {
		return m.CreatePodFunc(ctx, opts)
	}
	return &Pod{ID: "mock-id", ImageName: opts.ImageName}, nil
}

var _ PodProvisioner = (*MockClient)(nil)
