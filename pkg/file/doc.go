// Package file writes decoded QR output to local disk or to S3-compatible
// object storage.
//
// # Architecture
//
// The Storage interface has two implementations:
//   - LocalStorage: files confined to a base directory, parent directories
//     created on demand, partial files removed on failure.
//   - S3Storage: objects uploaded with PutObject to AWS S3 or any S3-compatible
//     service (MinIO, Wasabi, ...).
//
// Write applies the output contract on top of any Storage: binary mode stores
// the bytes unchanged, text mode requires valid UTF-8 first. ParseLocation
// turns a command-line target into either a local path or an s3:// bucket/key.
//
// # Usage
//
//	loc, err := file.ParseLocation(target)
//	if err != nil {
//		return err
//	}
//
//	var storage file.Storage
//	if loc.IsS3() {
//		storage, err = file.NewS3Storage(ctx, file.S3Config{Bucket: loc.Bucket, Region: "eu-central-1"})
//	} else {
//		storage, err = file.NewLocalStorage(filepath.Dir(loc.Path))
//	}
//
//	f, err := file.Write(ctx, storage, key, content, binaryMode)
//
// # Error Handling
//
//	_, err := file.Write(ctx, storage, "out.txt", data, false)
//	switch {
//	case errors.Is(err, file.ErrInvalidEncoding):
//		// text mode with non UTF-8 bytes
//	case errors.Is(err, file.ErrInvalidPath):
//		// path escapes the storage root
//	case errors.Is(err, file.ErrFailedToWriteFile):
//		// I/O failure
//	}
//
// S3 failures are mapped to package errors (ErrAccessDenied,
// ErrBucketNotFound, ErrServiceUnavailable, ...). Nothing is retried.
package file
