// Package blob re-exports the data file storage abstractions for stable
// imports and provides constructors for the available backends.
package blob

import (
	"context"
	"fmt"
	"strings"

	"igsdbcore/internal/blob/core"
	"igsdbcore/internal/infra/blob/fs"
	memorystore "igsdbcore/internal/infra/blob/memory"
	infraS3 "igsdbcore/internal/infra/blob/s3"
)

type (
	// Driver identifies a storage backend driver.
	Driver = core.Driver
	// PutOptions configures a data file write.
	PutOptions = core.PutOptions
	// SignedURLOptions configures URL pre-signing.
	SignedURLOptions = core.SignedURLOptions
	// Info describes stored data file metadata.
	Info = core.Info
	// Store is the interface for data file storage backends.
	Store = core.Store
)

const (
	// DriverFilesystem is the local filesystem driver.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 is the S3-compatible driver.
	DriverS3 = core.DriverS3
	// DriverMemory is the in-memory test driver.
	DriverMemory = core.DriverMemory
)

// ErrUnsupported indicates an operation isn't supported by a driver.
var ErrUnsupported = core.ErrUnsupported

// S3Config re-exports the infra S3 configuration type.
type S3Config = infraS3.Config

// NewFilesystem constructs a filesystem-backed Store rooted at the provided
// path. Returns Store so call sites depend on the interface.
func NewFilesystem(root string) (Store, error) {
	return fs.New(root)
}

// NewMemory returns an in-memory Store suitable for tests.
func NewMemory() Store { return memorystore.New() }

// NewS3 constructs an S3-backed Store from the provided configuration.
func NewS3(ctx context.Context, cfg S3Config) (Store, error) {
	return infraS3.New(ctx, cfg)
}

// DataFileKey builds the canonical storage key for a product's submission
// data file: "<token>/<filename>".
func DataFileKey(token, filename string) (string, error) {
	token = strings.TrimSpace(token)
	filename = strings.TrimSpace(filename)
	if token == "" {
		return "", fmt.Errorf("product token required")
	}
	if filename == "" {
		return "", fmt.Errorf("data file name required")
	}
	if strings.ContainsAny(token, "/\\") {
		return "", fmt.Errorf("product token %q must not contain path separators", token)
	}
	if strings.ContainsAny(filename, "/\\") {
		return "", fmt.Errorf("data file name %q must not contain path separators", filename)
	}
	return token + "/" + filename, nil
}
