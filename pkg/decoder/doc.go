// Package decoder ties the scanner, the payload resolver and the output
// storage into a single decode run.
//
// # Architecture
//
// Service.Decode performs scan, resolve and write for one image:
//
//  1. The output location is parsed (local path or s3://bucket/key).
//  2. The image is scanned with a qrcode.Scanner, or read from stdin when the
//     input is "-".
//  3. The raw payload is resolved by a payload.Resolver.
//  4. The content is written through file.Write to the storage picked by the
//     StorageFactory. Existing outputs are kept unless Request.Overwrite is set.
//
// Every run carries a run id (a UUID) in its context. RunIDExtractor adds it
// to log records when plugged into logger.WithContextExtractors.
//
// Service.Inspect stops after step 3. Both return a Result, which Report
// renders as text, JSON or YAML.
//
// # Usage
//
//	var cfg decoder.Config
//	config.MustLoad(&cfg)
//
//	svc := decoder.New(cfg, decoder.WithLogger(log))
//	res, err := svc.Decode(ctx, decoder.Request{
//		Input:  "qr.png",
//		Output: "out/payload.bin",
//		Binary: true,
//	})
//	if err != nil {
//		return err
//	}
//	_ = res.Report(os.Stdout, decoder.ReportJSON)
//
// # Error Handling
//
// Decode returns the error of the failing stage unchanged, so callers can
// match qrcode.ErrNoSymbolFound, qrcode.ErrImageLoad, file.ErrInvalidEncoding,
// file.ErrInvalidLocation and the file storage errors with errors.Is. The
// package adds:
//
//   - ErrMissingInput        – no input image was given.
//   - ErrMissingOutput       – no output location was given.
//   - ErrOutputExists        – the output exists and overwriting was not requested.
//   - ErrUnknownReportFormat – Report or ParseReportFormat got an unknown format.
package decoder
