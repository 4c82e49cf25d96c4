package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type Local struct {
	BaseDir string
}

func NewLocal(baseDir string) *Local {
	return &Local{BaseDir: baseDir}
}

func (l *Local) Resolve(ctx context.Context, key string) (Location, error) {
	_ = ctx

	key, ok := cleanKey(key)
	if !ok {
		return Location{}, ErrNotFound
	}
	p := filepath.Join(l.BaseDir, key)
	fi, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Location{}, ErrNotFound
		}
		return Location{}, err
	}
	if fi.IsDir() {
		return Location{}, ErrNotFound
	}
	return Location{Path: p}, nil
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
