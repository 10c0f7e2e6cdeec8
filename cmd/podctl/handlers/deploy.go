package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/imamik/podctl/internal/config"
	"github.com/imamik/podctl/internal/deployment"
	"github.com/imamik/podctl/internal/platform/runpod"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig resolves the configuration file.
	loadConfig = config.Load

	// lookupCredential reads the API key from the environment.
	lookupCredential = config.Credential

	// newProvisioner returns a factory for RunPod clients.
	newProvisioner = func(api config.APIConfig) deployment.ProvisionerFactory {
		return func(token string) runpod.PodProvisioner {
			return runpod.NewRealClient(token,
				runpod.WithEndpoint(api.URL),
				runpod.WithTimeout(api.Timeout))
		}
	}

	// newArchiver creates the optional record archive.
	newArchiver = deployment.ArchiveFromConfig
)

// DeployOptions holds the deploy command flags.
type DeployOptions struct {
	ConfigPath      string
	RecordPath      string
	NoWait          bool
	ProbeStream     bool
	MetricsTextfile string
}

// Deploy creates a pod running the STT service and waits until it answers.
//
// The workflow is:
//  1. Load configuration and read RUNPOD_API_KEY
//  2. Submit exactly one pod creation request
//  3. Write the deployment record
//  4. Poll the pod's HTTP endpoint until it returns 200 OK (unless NoWait)
//
// A missing API key aborts before any API call.
func Deploy(ctx context.Context, opts DeployOptions) (err error) {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	recordPath := cfg.RecordPath
	if opts.RecordPath != "" {
		recordPath = opts.RecordPath
	}

	metrics := deployment.NewMetrics()
	if opts.MetricsTextfile != "" {
		defer func() {
			if werr := metrics.WriteTextfile(opts.MetricsTextfile); werr != nil {
				log.WithError(werr).Debug("failed to write metrics")
				printWarning("Metrics were not written to %s: %v", opts.MetricsTextfile, werr)
			}
		}()
	}

	req := deployment.NewRequest(cfg)
	printDeployPlan(req)

	// A missing key is reported by Submit before any remote call.
	token, credErr := lookupCredential()
	if credErr != nil && !errors.Is(credErr, config.ErrMissingCredential) {
		return credErr
	}

	deployer := deployment.NewDeployer(newProvisioner(cfg.API), recordPath)
	deployer.Metrics = metrics
	if token != "" {
		archiver, aerr := newArchiver(ctx, cfg.Archive)
		if aerr != nil {
			log.WithError(aerr).Debug("record archive disabled")
			printWarning("Record archive disabled: %v", aerr)
		} else if archiver != nil {
			deployer.Archiver = warningArchiver{archiver}
		}
	}

	log.WithField("run-id", deployer.RunID).Debug("starting deployment")

	rec, err := deployer.Submit(ctx, req, token)
	if err != nil {
		printSubmitFailure(err)
		return err
	}

	printRecord(rec, recordPath)

	if opts.NoWait {
		fmt.Println()
		fmt.Println("Not waiting for readiness. Resume with:")
		fmt.Printf("  podctl wait --record %s\n", recordPath)
		return nil
	}

	return waitForPod(ctx, cfg, rec, opts.ProbeStream, metrics)
}

// printDeployPlan prints what is about to be deployed.
func printDeployPlan(req deployment.Request) {
	fmt.Println()
	printTitle("🚀 Deploying STT service to RunPod")
	printField("Image", req.Image)
	printField("GPU", fmt.Sprintf("%d x %s", req.GPUCount, req.GPUType))
	printField("Disk", fmt.Sprintf("%d GB at %s", req.ContainerDiskGB, req.VolumeMountPath))
	printField("Port", req.PortSpec())
	printField("Model", req.Model)
	printField("Command", req.DockerArgs())
	fmt.Println()
}

// printSubmitFailure explains why submission failed.
func printSubmitFailure(err error) {
	if errors.Is(err, config.ErrMissingCredential) {
		printFailure("%s environment variable not set", config.CredentialEnvVar)
		fmt.Println("   Set it with:")
		fmt.Printf("   export %s=<your-api-key>\n", config.CredentialEnvVar)
		return
	}

	printFailure("Deployment failed: %v", err)

	var apiErr *runpod.APIError
	if errors.As(err, &apiErr) {
		if runpod.IsUnauthorized(err) {
			fmt.Printf("   Check that %s is a valid RunPod API key.\n", config.CredentialEnvVar)
		}
		if apiErr.Raw != "" {
			fmt.Printf("   Response: %s\n", apiErr.Raw)
		}
	}
}

// printRecord prints the created pod and where its record was saved.
func printRecord(rec *deployment.Record, path string) {
	printSuccess("Pod created: %s", rec.PodID)
	printField("HTTP", rec.AccessURL)
	printField("WebSocket", rec.WebSocketURL)
	printField("Record", path)
}

// waitTimeout is the wall-clock bound printed for the readiness loop.
func waitTimeout(r config.ReadinessConfig) time.Duration {
	return r.MaxWait().Round(time.Second)
}

// warningArchiver reports upload failures on the console. The deployer
// still treats them as non-fatal.
type warningArchiver struct {
	deployment.Archiver
}

func (a warningArchiver) Archive(ctx context.Context, rec *deployment.Record) error {
	err := a.Archiver.Archive(ctx, rec)
	if err != nil {
		printWarning("Record was not archived: %v", err)
	}
	return err
}
