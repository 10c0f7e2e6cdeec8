// Package s3 provides a minimal client for S3-compatible object storage.
//
// It is used to archive deployment records next to the local record file so
// that a team can find pods created from other machines. Only uploads are
// supported.
package s3
