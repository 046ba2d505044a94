package schema

import (
	"context"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/askql/askql/internal/config"
)

// Load resolves the schema CSV from the configured source. A schema object
// key routes through the object store; otherwise the local path is read.
func Load(ctx context.Context, cfg config.Config) ([]Table, error) {
	if cfg.Schema.ObjectKey != "" {
		return loadFromObjectStore(ctx, cfg)
	}
	return loadFromFile(cfg.Schema.Path)
}

func loadFromFile(path string) ([]Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema csv %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	tables, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse schema csv %q: %w", path, err)
	}
	return tables, nil
}

func loadFromObjectStore(ctx context.Context, cfg config.Config) ([]Table, error) {
	client, err := minio.New(cfg.ObjectStore.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ObjectStore.AccessKeyID, cfg.ObjectStore.SecretAccessKey, ""),
		Secure: cfg.ObjectStore.UseSSL,
		Region: cfg.ObjectStore.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}

	object, err := client.GetObject(ctx, cfg.ObjectStore.Bucket, cfg.Schema.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get schema object %q: %w", cfg.Schema.ObjectKey, err)
	}
	defer func() { _ = object.Close() }()

	tables, err := Parse(object)
	if err != nil {
		return nil, fmt.Errorf("parse schema object %q: %w", cfg.Schema.ObjectKey, err)
	}
	return tables, nil
}
