// Package naming provides consistent naming functions for RunPod resources.
//
// Pod names follow the pattern {prefix}-{MMDD-HHMM} so that deployments made
// within different minutes never collide with each other or with pods
// created by hand. Access URLs are derived from the pod id and exposed port
// through the RunPod HTTP proxy.
package naming
