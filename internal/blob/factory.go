package blob

import (
	"context"
	"fmt"
	"os"

	infraS3 "igsdbcore/internal/infra/blob/s3"
)

// Open selects a Store implementation using environment variables.
//
//	IGSDB_BLOB_DRIVER: fs|s3|memory (default fs)
//	IGSDB_BLOB_FS_ROOT: directory root when driver=fs (default ./datafiles)
//	(S3 specific variables documented in the s3 package)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("IGSDB_BLOB_DRIVER")
	if driver == "" {
		driver = string(DriverFilesystem)
	}
	switch Driver(driver) {
	case DriverFilesystem:
		return NewFilesystem(os.Getenv("IGSDB_BLOB_FS_ROOT"))
	case DriverS3:
		return infraS3.OpenFromEnv(ctx)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
