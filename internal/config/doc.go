// Package config defines the deployment configuration used by every podctl
// command.
//
// The [Config] struct describes the pod to provision (image, GPU type, disk,
// port, environment and start command), how its endpoints are derived, where
// the deployment record is written and how long readiness is awaited. It is
// loaded from an optional YAML file, completed with built-in defaults,
// overridden from the environment and validated before use.
package config
