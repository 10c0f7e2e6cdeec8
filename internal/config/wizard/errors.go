package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errImageRequired    = errors.New("container image is required")
	errImageInvalid     = errors.New("container image must not contain whitespace")
	errDiskSizeRequired = errors.New("disk size is required")
	errDiskSizeInvalid  = errors.New("disk size must be a whole number of gigabytes between 1 and 2048")
	errAttemptsInvalid  = errors.New("attempts must be a positive whole number")
	errEndpointInvalid  = errors.New("endpoint must be an http:// or https:// URL")
)
