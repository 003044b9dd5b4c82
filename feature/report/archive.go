package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"time"

	"empanada-tracker/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archiver stores reports as JSON documents in object storage.
type Archiver struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
	now    func() time.Time
}

// NewArchiver creates an archiver writing to bucket under prefix.
func NewArchiver(client storage.Client, bucket, prefix string, logger *zap.Logger) *Archiver {
	return &Archiver{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
		now:    time.Now,
	}
}

// ArchivedReport describes one stored report.
type ArchivedReport struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Archive stores report under <prefix>/<kind>/<date>-<uuid>.json and returns the key.
// The bucket is created when missing.
func (a *Archiver) Archive(ctx context.Context, kind string, report any) (string, error) {
	if err := a.ensureBucket(ctx); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode %s report: %w", kind, err)
	}

	key := path.Join(a.prefix, kind, fmt.Sprintf("%s-%s.json", a.now().Format(time.DateOnly), uuid.NewString()))
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	a.logger.Info("Archived report",
		zap.String("kind", kind),
		zap.String("bucket", a.bucket),
		zap.String("key", key),
		zap.Int("bytes", len(data)))
	return key, nil
}

// List returns the archived reports of kind, newest key first.
func (a *Archiver) List(ctx context.Context, kind string) ([]ArchivedReport, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    path.Join(a.prefix, kind) + "/",
		Recursive: true,
	}

	var reports []ArchivedReport
	for obj := range a.client.ListObjects(ctx, a.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s reports: %w", kind, obj.Err)
		}
		reports = append(reports, ArchivedReport{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Key > reports[j].Key
	})
	return reports, nil
}

// Fetch returns the raw JSON of an archived report.
func (a *Archiver) Fetch(ctx context.Context, key string) ([]byte, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

func (a *Archiver) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}

	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	a.logger.Info("Created report bucket", zap.String("bucket", a.bucket))
	return nil
}
