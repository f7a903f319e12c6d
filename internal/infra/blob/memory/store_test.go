package memory

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"igsdbcore/internal/blob/core"
)

func TestPutGetHeadDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	info, err := s.Put(ctx, "tok1/layer.txt", strings.NewReader("spectral data"), core.PutOptions{
		ContentType: "text/plain",
		Metadata:    map[string]string{"kind": "submission"},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Size != int64(len("spectral data")) || info.ContentType != "text/plain" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.ETag == "" {
		t.Fatalf("expected etag")
	}

	got, rc, err := s.Get(ctx, "tok1/layer.txt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	_ = rc.Close()
	if string(body) != "spectral data" {
		t.Fatalf("unexpected body: %q", body)
	}
	if got.Metadata["kind"] != "submission" {
		t.Fatalf("metadata lost: %+v", got.Metadata)
	}

	head, err := s.Head(ctx, "tok1/layer.txt")
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	if head.ETag != info.ETag {
		t.Fatalf("etag mismatch: %s vs %s", head.ETag, info.ETag)
	}

	existed, err := s.Delete(ctx, "tok1/layer.txt")
	if err != nil || !existed {
		t.Fatalf("delete: existed=%v err=%v", existed, err)
	}
	existed, err = s.Delete(ctx, "tok1/layer.txt")
	if err != nil || existed {
		t.Fatalf("second delete: existed=%v err=%v", existed, err)
	}
}

func TestPutRejectsDuplicateKey(t *testing.T) {
	ctx := context.Background()
	s := New()
	if _, err := s.Put(ctx, "dup", strings.NewReader("a"), core.PutOptions{}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := s.Put(ctx, "dup", strings.NewReader("b"), core.PutOptions{}); err == nil {
		t.Fatalf("expected duplicate key rejection")
	}
}

func TestListFiltersByPrefix(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, key := range []string{"tokA/one", "tokA/two", "tokB/one"} {
		if _, err := s.Put(ctx, key, strings.NewReader(key), core.PutOptions{}); err != nil {
			t.Fatalf("put %s: %v", key, err)
		}
	}
	infos, err := s.List(ctx, "tokA/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 2 || infos[0].Key != "tokA/one" || infos[1].Key != "tokA/two" {
		t.Fatalf("unexpected listing: %+v", infos)
	}
	all, err := s.List(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
}

func TestPresignUnsupported(t *testing.T) {
	s := New()
	if _, err := s.PresignURL(context.Background(), "x", core.SignedURLOptions{}); !errors.Is(err, core.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
