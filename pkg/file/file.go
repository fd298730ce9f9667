package file

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// File describes a stored output.
type File struct {
	Filename     string
	Size         int64
	MIMEType     string
	Extension    string
	AbsolutePath string
	RelativePath string
}

// Storage is a destination for decoded output.
type Storage interface {
	// Save writes everything from r to path, replacing an existing file.
	Save(ctx context.Context, path string, r io.Reader) (*File, error)
	// Exists reports whether something is already stored at path.
	Exists(ctx context.Context, path string) bool
	// URL returns the location of path, for logs and reports.
	URL(path string) string
}

// Write stores data at path. In binary mode the bytes are written as-is;
// in text mode they must be valid UTF-8, otherwise ErrInvalidEncoding is
// returned and nothing is written.
//
// Example:
//
//	f, err := file.Write(ctx, storage, "result.txt", content.Bytes, false)
//	if errors.Is(err, file.ErrInvalidEncoding) {
//	    // retry with binary mode
//	}
func Write(ctx context.Context, s Storage, path string, data []byte, binaryMode bool) (*File, error) {
	if !binaryMode && !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	return s.Save(ctx, path, bytes.NewReader(data))
}

// DetectMIMEType sniffs the content type of data.
// http.DetectContentType looks at no more than the first 512 bytes.
func DetectMIMEType(data []byte) string {
	return http.DetectContentType(data)
}

// Location is a parsed output target.
type Location struct {
	// Bucket is set for s3:// targets and empty for local paths.
	Bucket string
	// Path is the object key for S3 or the file path for local targets.
	Path string
}

// IsS3 reports whether the location points to an S3 bucket.
func (l Location) IsS3() bool {
	return l.Bucket != ""
}

// ParseLocation understands "s3://bucket/key" and plain file paths.
//
// Example:
//
//	loc, _ := file.ParseLocation("s3://archive/scans/out.bin")
//	// loc.Bucket == "archive", loc.Path == "scans/out.bin"
func ParseLocation(target string) (Location, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return Location{}, ErrInvalidLocation
	}

	if !strings.HasPrefix(target, "s3://") {
		if strings.HasSuffix(target, "/") || strings.HasSuffix(target, string(filepath.Separator)) {
			return Location{}, ErrInvalidLocation
		}
		return Location{Path: target}, nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return Location{}, ErrInvalidLocation
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" || strings.HasSuffix(key, "/") {
		return Location{}, ErrInvalidLocation
	}
	return Location{Bucket: u.Host, Path: key}, nil
}

// sniff reads the head of r to detect its MIME type and returns a reader
// that still yields the full stream.
func sniff(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, err
	}
	head = head[:n]
	return DetectMIMEType(head), io.MultiReader(bytes.NewReader(head), r), nil
}
