package deployment

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/podctl/internal/config"
	"github.com/imamik/podctl/internal/platform/s3"
)

// Archiver stores a copy of a deployment record outside the working directory.
type Archiver interface {
	Archive(ctx context.Context, rec *Record) error
}

// RecordArchive uploads records as JSON objects named after the pod id.
type RecordArchive struct {
	uploader s3.Uploader
	bucket   string
	prefix   string
}

// NewRecordArchive returns an archive writing to bucket under prefix.
func NewRecordArchive(uploader s3.Uploader, bucket, prefix string) *RecordArchive {
	return &RecordArchive{uploader: uploader, bucket: bucket, prefix: prefix}
}

// newS3Uploader is replaceable in tests.
var newS3Uploader = func(ctx context.Context, opts s3.Options) (s3.Uploader, error) {
	return s3.NewClient(ctx, opts)
}

// ArchiveFromConfig builds a RecordArchive from cfg. It returns a nil
// Archiver when archiving is disabled.
func ArchiveFromConfig(ctx context.Context, cfg config.ArchiveConfig) (Archiver, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	uploader, err := newS3Uploader(ctx, s3.Options{
		Endpoint:  cfg.Endpoint,
		Region:    cfg.Region,
		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create archive client: %w", err)
	}
	return NewRecordArchive(uploader, cfg.Bucket, cfg.Prefix), nil
}

// Key returns the object key for rec.
func (a *RecordArchive) Key(rec *Record) string {
	return s3.ObjectKey(a.prefix, rec.PodID+".json")
}

// Archive uploads rec.
func (a *RecordArchive) Archive(ctx context.Context, rec *Record) error {
	data, err := rec.Marshal()
	if err != nil {
		return err
	}
	return a.uploader.PutObject(ctx, a.bucket, a.Key(rec), data, "application/json")
}
