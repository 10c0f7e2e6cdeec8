package deployment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/imamik/podctl/internal/config"
	"github.com/imamik/podctl/internal/platform/runpod"
	"github.com/imamik/podctl/internal/util/naming"
)

// ProvisionerFactory returns a provisioner authenticated with credential.
type ProvisionerFactory func(credential string) runpod.PodProvisioner

// Deployer submits deployments.
type Deployer struct {
	newProvisioner ProvisionerFactory
	recordPath     string

	// Archiver, when set, receives a copy of every saved record. Archive
	// failures are logged and do not fail the submission.
	Archiver Archiver
	Metrics  *Metrics

	// RunID correlates the log lines of one invocation.
	RunID string

	now func() time.Time
}

// NewDeployer returns a Deployer that writes records to recordPath.
func NewDeployer(newProvisioner ProvisionerFactory, recordPath string) *Deployer {
	return &Deployer{
		newProvisioner: newProvisioner,
		recordPath:     recordPath,
		RunID:          uuid.NewString(),
		now:            time.Now,
	}
}

// Submit provisions one pod for req and saves its record.
//
// An empty credential fails with config.ErrMissingCredential before any
// remote call. The provisioning call is made exactly once. When the pod is
// created but its record cannot be written, the returned error names the
// pod id so it can be cleaned up by hand.
func (d *Deployer) Submit(ctx context.Context, req Request, credential string) (*Record, error) {
	if credential == "" {
		d.Metrics.recordDeployment(ResultConfigError)
		return nil, config.ErrMissingCredential
	}

	createdAt := d.now()
	name := naming.Pod(req.NamePrefix, createdAt)
	logger := log.WithFields(log.Fields{
		"run-id":   d.RunID,
		"pod-name": name,
	})
	logger.WithFields(log.Fields{
		"image":       req.Image,
		"gpu-type":    req.GPUType,
		"disk-gb":     req.ContainerDiskGB,
		"ports":       req.PortSpec(),
		"docker-args": req.DockerArgs(),
	}).Debug("submitting deployment")

	pod, err := d.newProvisioner(credential).CreatePod(ctx, req.createOpts(name))
	if err != nil {
		d.Metrics.recordDeployment(ResultFailed)
		return nil, fmt.Errorf("failed to create pod %s: %w", name, err)
	}
	if pod == nil || pod.ID == "" {
		d.Metrics.recordDeployment(ResultFailed)
		return nil, fmt.Errorf("failed to create pod %s: %w", name, runpod.ErrNoPodID)
	}

	logger = logger.WithField("pod-id", pod.ID)
	logger.Info("pod created")

	rec := NewRecord(pod.ID, req, createdAt)
	if err := rec.Save(d.recordPath); err != nil {
		d.Metrics.recordDeployment(ResultFailed)
		return nil, fmt.Errorf("pod %s was created but its record could not be saved: %w", pod.ID, err)
	}
	d.Metrics.recordDeployment(ResultCreated)

	if d.Archiver != nil {
		if err := d.Archiver.Archive(ctx, rec); err != nil {
			logger.WithError(err).Warn("failed to archive deployment record")
		} else {
			logger.Debug("deployment record archived")
		}
	}

	return rec, nil
}
