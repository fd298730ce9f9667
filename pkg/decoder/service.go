package decoder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/qrdecode/pkg/file"
	"github.com/dmitrymomot/qrdecode/pkg/logger"
	"github.com/dmitrymomot/qrdecode/pkg/payload"
	"github.com/dmitrymomot/qrdecode/pkg/qrcode"
)

// StdinInput as Request.Input reads the image from the service's stdin.
const StdinInput = "-"

// Scanner extracts the raw payload of the first QR symbol in an image.
type Scanner interface {
	Scan(ctx context.Context, r io.Reader) ([]byte, error)
	ScanFile(ctx context.Context, path string) ([]byte, error)
}

// Resolver classifies a raw payload and converts it to its final bytes.
type Resolver interface {
	Resolve(ctx context.Context, raw []byte) payload.Content
}

// StorageFactory returns the storage backing loc and the key to write under.
type StorageFactory func(ctx context.Context, loc file.Location) (file.Storage, string, error)

// Request describes a single decode run.
type Request struct {
	Input     string // image path, or StdinInput
	Output    string // local path or s3://bucket/key
	Binary    bool   // write bytes as-is instead of requiring UTF-8 text
	Overwrite bool   // replace an existing output
}

// Service runs the scan, resolve and write pipeline.
// It is safe for concurrent use as long as its stdin is not shared.
type Service struct {
	scanner  Scanner
	resolver Resolver
	storage  StorageFactory
	stdin    io.Reader
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger. It is also handed to the default
// scanner and resolver. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithScanner(sc Scanner) Option {
	return func(s *Service) {
		s.scanner = sc
	}
}

func WithResolver(r Resolver) Option {
	return func(s *Service) {
		s.resolver = r
	}
}

// WithStorageFactory replaces the local/S3 storage selection.
func WithStorageFactory(f StorageFactory) Option {
	return func(s *Service) {
		s.storage = f
	}
}

// WithStdin sets the reader used when Request.Input is StdinInput.
func WithStdin(r io.Reader) Option {
	return func(s *Service) {
		s.stdin = r
	}
}

// New creates a Service. Components not supplied through options are built
// from cfg.
func New(cfg Config, opts ...Option) *Service {
	s := &Service{
		stdin:  os.Stdin,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.scanner == nil {
		s.scanner = qrcode.NewScanner(
			qrcode.WithTryHarder(cfg.TryHarder),
			qrcode.WithLogger(s.logger),
		)
	}
	if s.resolver == nil {
		s.resolver = payload.NewResolver(payload.WithLogger(s.logger))
	}
	if s.storage == nil {
		s.storage = DefaultStorage(cfg)
	}
	return s
}

// DefaultStorage writes s3:// locations to S3 and everything else to the
// local filesystem. A local output's parent directory becomes the storage
// root and is created when missing.
func DefaultStorage(cfg Config) StorageFactory {
	return func(ctx context.Context, loc file.Location) (file.Storage, string, error) {
		if loc.IsS3() {
			st, err := file.NewS3Storage(ctx, file.S3Config{
				Bucket:         loc.Bucket,
				Region:         cfg.S3.Region,
				AccessKeyID:    cfg.S3.AccessKeyID,
				SecretKey:      cfg.S3.SecretKey,
				Endpoint:       cfg.S3.Endpoint,
				BaseURL:        cfg.S3.BaseURL,
				ForcePathStyle: cfg.S3.ForcePathStyle,
			}, file.WithS3UploadTimeout(cfg.UploadTimeout))
			if err != nil {
				return nil, "", err
			}
			return st, loc.Path, nil
		}

		st, err := file.NewLocalStorage(filepath.Dir(loc.Path), file.WithLocalWriteTimeout(cfg.UploadTimeout))
		if err != nil {
			return nil, "", err
		}
		return st, filepath.Base(loc.Path), nil
	}
}

// Decode scans req.Input, resolves the payload and writes it to req.Output.
// A run id is attached to ctx unless the caller already set one.
func (s *Service) Decode(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Output) == "" {
		return nil, ErrMissingOutput
	}
	loc, err := file.ParseLocation(req.Output)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, req.Output)
	}

	ctx, runID := ensureRunID(ctx)
	start := time.Now()

	res, err := s.inspect(ctx, runID, req.Input)
	if err != nil {
		return nil, err
	}

	storage, key, err := s.storage(ctx, loc)
	if err != nil {
		s.logger.ErrorContext(ctx, "output storage unavailable", logger.Path(req.Output), logger.Error(err))
		return nil, err
	}
	target := storage.URL(key)

	if !req.Overwrite && storage.Exists(ctx, key) {
		return nil, fmt.Errorf("%w: %s", ErrOutputExists, target)
	}

	if _, err := file.Write(ctx, storage, key, res.Content, req.Binary); err != nil {
		s.logger.ErrorContext(ctx, "write failed",
			logger.Path(target),
			logger.Kind(res.Kind),
			logger.Error(err),
		)
		return nil, err
	}

	res.Output = target
	res.Binary = req.Binary
	res.Text = ""

	s.logger.InfoContext(ctx, "output written",
		logger.Path(target),
		logger.Kind(res.Kind),
		logger.OutputSize(res.OutputSize),
		logger.Duration(time.Since(start)),
	)
	return res, nil
}

// Inspect scans and resolves input without writing anything. Result.Text
// carries the content when it is valid UTF-8.
func (s *Service) Inspect(ctx context.Context, input string) (*Result, error) {
	ctx, runID := ensureRunID(ctx)
	return s.inspect(ctx, runID, input)
}

func (s *Service) inspect(ctx context.Context, runID, input string) (*Result, error) {
	raw, err := s.scan(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "scan failed", logger.Path(input), logger.Error(err))
		return nil, err
	}

	content := s.resolver.Resolve(ctx, raw)
	sum := sha256.Sum256(content.Bytes)

	res := &Result{
		RunID:      runID,
		Input:      input,
		Kind:       content.Kind,
		Base64:     content.Kind.IsBase64(),
		InputSize:  len(raw),
		OutputSize: len(content.Bytes),
		MIMEType:   file.DetectMIMEType(content.Bytes),
		SHA256:     hex.EncodeToString(sum[:]),
		Content:    content.Bytes,
	}
	if utf8.Valid(content.Bytes) {
		res.Text = string(content.Bytes)
	}

	s.logger.DebugContext(ctx, "payload resolved",
		logger.Path(input),
		logger.Kind(res.Kind),
		logger.InputSize(res.InputSize),
		logger.OutputSize(res.OutputSize),
	)
	return res, nil
}

func (s *Service) scan(ctx context.Context, input string) ([]byte, error) {
	switch strings.TrimSpace(input) {
	case "":
		return nil, ErrMissingInput
	case StdinInput:
		if s.stdin == nil {
			return nil, ErrMissingInput
		}
		return s.scanner.Scan(ctx, s.stdin)
	}
	return s.scanner.ScanFile(ctx, input)
}
