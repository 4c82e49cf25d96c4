package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestImageURL(t *testing.T) {
	if got := ImageURL("12"); got != "/Images/12.jpg" {
		t.Fatalf("got %q", got)
	}
	if got := ImageURL("a b"); got != "/Images/a%20b.jpg" {
		t.Fatalf("got %q", got)
	}
}

func TestLocalResolve(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "1.jpg"), []byte("jpg"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLocal(dir)

	t.Run("existing file", func(t *testing.T) {
		loc, err := l.Resolve(context.Background(), "1.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loc.Path != filepath.Join(dir, "1.jpg") {
			t.Fatalf("got path %q", loc.Path)
		}
	})

	t.Run("missing file -> ErrNotFound", func(t *testing.T) {
		if _, err := l.Resolve(context.Background(), "2.jpg"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("traversal is flattened", func(t *testing.T) {
		if _, err := l.Resolve(context.Background(), "../../etc/passwd"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		if _, err := l.Resolve(context.Background(), "1.txt"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

type fakeHead struct {
	err     error
	lastKey string
}

func (f *fakeHead) HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.lastKey = *in.Key
	if f.err != nil {
		return nil, f.err
	}
	return &s3.HeadObjectOutput{}, nil
}

func TestS3Resolve(t *testing.T) {
	t.Run("found -> public url", func(t *testing.T) {
		h := &fakeHead{}
		s := &S3{Client: h, Bucket: "b", Prefix: "/products/", PublicBaseURL: "https://cdn.example.com"}
		loc, err := s.Resolve(context.Background(), "5.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.lastKey != "products/5.jpg" {
			t.Fatalf("got key %q", h.lastKey)
		}
		if loc.URL != "https://cdn.example.com/products/5.jpg" {
			t.Fatalf("got url %q", loc.URL)
		}
	})

	t.Run("not found", func(t *testing.T) {
		s := &S3{Client: &fakeHead{err: &types.NotFound{}}, Bucket: "b"}
		if _, err := s.Resolve(context.Background(), "5.jpg"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("other error passes through", func(t *testing.T) {
		s := &S3{Client: &fakeHead{err: errors.New("denied")}, Bucket: "b"}
		_, err := s.Resolve(context.Background(), "5.jpg")
		if err == nil || errors.Is(err, ErrNotFound) {
			t.Fatalf("expected wrapped error, got %v", err)
		}
	})
}

func TestNewFactory(t *testing.T) {
	res, err := New(context.Background(), Config{})
	if err != nil || res.Driver != "local" {
		t.Fatalf("got %+v, %v", res, err)
	}
	if _, err := New(context.Background(), Config{Driver: "s3"}); err == nil {
		t.Fatal("expected error for incomplete s3 config")
	}
	if _, err := New(context.Background(), Config{Driver: "ftp"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
