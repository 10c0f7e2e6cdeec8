// Package retry provides a bounded, fixed-interval poll loop.
//
// The [Poll] function runs an operation until it succeeds, returns a
// [Fatal] error, or the attempt budget is spent, pausing for a constant
// interval after every failed attempt but the last. It is used to wait for
// a freshly provisioned pod to start answering HTTP requests.
package retry
