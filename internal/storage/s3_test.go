package storage

import (
	"context"
	"testing"

	"github.com/octobees/futsal-booking/api/internal/config"
)

func TestNewS3Store_RequiresBucket(t *testing.T) {
	if _, err := NewS3Store(config.StorageConfig{}); err == nil {
		t.Fatalf("expected error for missing bucket")
	}
}

func TestS3Store_Upload_Validation(t *testing.T) {
	store := &S3Store{bucket: "assets", region: "ap-southeast-1"}

	if _, err := store.Upload(context.Background(), "", []byte("x"), "image/png"); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if _, err := store.Upload(context.Background(), "services/a.png", []byte("x"), ""); err == nil {
		t.Fatalf("expected error for missing content type")
	}
}

func TestS3Store_ObjectKeyAndPublicURL(t *testing.T) {
	store := &S3Store{bucket: "assets", region: "ap-southeast-1", basePath: "business-assets"}

	key := store.objectKey("/services/user/1_0.png")
	if key != "business-assets/services/user/1_0.png" {
		t.Fatalf("unexpected key: %s", key)
	}
	url := store.PublicURL(key)
	if url != "https://assets.s3.ap-southeast-1.amazonaws.com/business-assets/services/user/1_0.png" {
		t.Fatalf("unexpected url: %s", url)
	}

	store.cdnDomain = "cdn.example.com"
	if got := store.PublicURL(key); got != "https://cdn.example.com/business-assets/services/user/1_0.png" {
		t.Fatalf("unexpected cdn url: %s", got)
	}

	bare := &S3Store{bucket: "assets", region: "us-east-1"}
	if got := bare.objectKey("receipts/r.pdf"); got != "receipts/r.pdf" {
		t.Fatalf("unexpected key without base path: %s", got)
	}
}
