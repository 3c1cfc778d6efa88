package utils

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
)

const (
	StorageProviderLocal = "local"
	StorageProviderGCS   = "gcs"

	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportSink receives rendered report snapshots by file name.
type ReportSink interface {
	Put(ctx context.Context, name string, data []byte, contentType string) error
}

// LocalReportSink writes reports into a directory on disk.
type LocalReportSink struct {
	Dir string
}

func (s *LocalReportSink) Put(ctx context.Context, name string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, name), data, 0o644)
}

// GCSReportSink uploads reports as objects under Prefix in Bucket. One storage
// client is created on the first Put and shared by every later one.
type GCSReportSink struct {
	Bucket string
	Prefix string

	mu     sync.Mutex
	client *storage.Client
}

func (s *GCSReportSink) storageClient(ctx context.Context) (*storage.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		client, err := getGoogleClient(ctx)
		if err != nil {
			return nil, err
		}
		s.client = client
	}
	return s.client, nil
}

func (s *GCSReportSink) Put(ctx context.Context, name string, data []byte, contentType string) error {
	client, err := s.storageClient(ctx)
	if err != nil {
		return err
	}
	return UploadBytesToGCS(ctx, client, s.Bucket, s.ObjectName(name), data, contentType)
}

// Close releases the storage client, if one was created.
func (s *GCSReportSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

func (s *GCSReportSink) ObjectName(name string) string {
	prefix := strings.Trim(s.Prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// NewReportSink picks the sink implementation for provider.
func NewReportSink(provider, dir, bucket, prefix string) (ReportSink, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", StorageProviderLocal:
		return &LocalReportSink{Dir: dir}, nil
	case StorageProviderGCS:
		return &GCSReportSink{Bucket: bucket, Prefix: prefix}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrorUnknownReportSink, provider)
	}
}
