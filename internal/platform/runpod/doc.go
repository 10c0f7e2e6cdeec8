// Package runpod provides a client for the RunPod GraphQL provisioning API.
//
// Only pod creation is implemented: [RealClient.CreatePod] issues a single
// podFindAndDeployOnDemand mutation and returns the created pod. Requests
// are never retried; a response without a pod id is reported as
// [ErrNoPodID] together with the raw response body.
//
// The endpoint defaults to https://api.runpod.io/graphql and authenticates
// with the API key as a bearer token.
package runpod
