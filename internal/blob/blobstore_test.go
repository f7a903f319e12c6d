package blob

import (
	"context"
	"strings"
	"testing"
)

func TestDataFileKey(t *testing.T) {
	key, err := DataFileKey("abc123", "layer.bsdf.xml")
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	if key != "abc123/layer.bsdf.xml" {
		t.Fatalf("unexpected key: %s", key)
	}
	if _, err := DataFileKey("", "f"); err == nil {
		t.Fatalf("empty token must be rejected")
	}
	if _, err := DataFileKey("tok", ""); err == nil {
		t.Fatalf("empty filename must be rejected")
	}
	if _, err := DataFileKey("to/k", "f"); err == nil {
		t.Fatalf("path separators in token must be rejected")
	}
	if _, err := DataFileKey("tok", "a/b"); err == nil {
		t.Fatalf("path separators in filename must be rejected")
	}
	if _, err := DataFileKey("tok", `a\b`); err == nil {
		t.Fatalf("backslashes in filename must be rejected")
	}
}

func TestOpenSelectsMemoryDriver(t *testing.T) {
	t.Setenv("IGSDB_BLOB_DRIVER", "memory")
	store, err := Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if store.Driver() != DriverMemory {
		t.Fatalf("expected memory driver, got %s", store.Driver())
	}
}

func TestOpenDefaultsToFilesystem(t *testing.T) {
	t.Setenv("IGSDB_BLOB_DRIVER", "")
	t.Setenv("IGSDB_BLOB_FS_ROOT", t.TempDir())
	store, err := Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if store.Driver() != DriverFilesystem {
		t.Fatalf("expected fs driver, got %s", store.Driver())
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	t.Setenv("IGSDB_BLOB_DRIVER", "carrier-pigeon")
	if _, err := Open(context.Background()); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}

func TestOpenS3RequiresBucket(t *testing.T) {
	t.Setenv("IGSDB_BLOB_DRIVER", "s3")
	t.Setenv("IGSDB_BLOB_S3_BUCKET", "")
	_, err := Open(context.Background())
	if err == nil || !strings.Contains(err.Error(), "IGSDB_BLOB_S3_BUCKET") {
		t.Fatalf("expected bucket requirement error, got %v", err)
	}
}

func TestMemoryStorePutGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	key, err := DataFileKey("tok", "spectra.dat")
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	if _, err := store.Put(ctx, key, strings.NewReader("data"), PutOptions{ContentType: "application/octet-stream"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	info, rc, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = rc.Close()
	if info.ContentType != "application/octet-stream" {
		t.Fatalf("content type lost: %+v", info)
	}
}
