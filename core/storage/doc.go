// Package storage wraps the MinIO Go client for the report archive.
//
// The Client interface covers only what archiving needs, so tests can swap in
// core/storage/mocks. Both AWS S3 and self-hosted MinIO endpoints work.
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
