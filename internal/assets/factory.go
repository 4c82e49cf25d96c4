package assets

import (
	"context"
	"fmt"
)

type Config struct {
	Driver   string
	LocalDir string
	S3       S3Config
}

type FactoryResult struct {
	Driver string
	Store  Store
}

func New(ctx context.Context, cfg Config) (FactoryResult, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "local"
	}

	switch driver {
	case "local":
		dir := cfg.LocalDir
		if dir == "" {
			dir = "./public/images"
		}
		return FactoryResult{Driver: "local", Store: NewLocal(dir)}, nil

	case "s3":
		if cfg.S3.Region == "" || cfg.S3.Bucket == "" || cfg.S3.PublicBaseURL == "" {
			return FactoryResult{}, fmt.Errorf("S3 config missing: S3_REGION, S3_BUCKET, S3_PUBLIC_BASE_URL required")
		}
		s, err := NewS3(ctx, cfg.S3)
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "s3", Store: s}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown STORAGE_DRIVER: %s", driver)
	}
}
