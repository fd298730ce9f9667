package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/qrdecode/pkg/config"
	"github.com/dmitrymomot/qrdecode/pkg/decoder"
	"github.com/dmitrymomot/qrdecode/pkg/logger"
)

// options holds the parsed command line flags.
type options struct {
	verbose  bool
	envFiles []string

	input  string
	output string
	binary bool
	force  bool
	report string

	inspectReport string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "qrdecode",
		Short: "Decode the payload of a QR code image",
		Long: `qrdecode scans a QR code image and decodes its payload.

Payloads made of '0'/'1' digits are packed into bytes eight digits at a time,
canonical Base64 is unwrapped (including Base64 of a digit string) and
anything else is written unchanged.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "load environment variables from file (repeatable, later files win)")

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a QR code and write its payload",
		Example: `  qrdecode decode -i qr.png -o payload.txt
  qrdecode decode -i qr.png -o payload.bin --binary
  cat qr.png | qrdecode decode -i - -o s3://archive/payload.bin -b --report json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDecode(cmd, opts)
		},
	}
	decodeCmd.Flags().StringVarP(&opts.input, "input", "i", "", "QR code image path, - reads stdin")
	decodeCmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path or s3://bucket/key")
	decodeCmd.Flags().BoolVarP(&opts.binary, "binary", "b", false, "write the payload as raw bytes instead of UTF-8 text")
	decodeCmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing output")
	decodeCmd.Flags().StringVar(&opts.report, "report", "", "print a report to stdout: text, json or yaml")
	_ = decodeCmd.MarkFlagRequired("input")
	_ = decodeCmd.MarkFlagRequired("output")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show how a QR code payload would be decoded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	inspectCmd.Flags().StringVarP(&opts.input, "input", "i", "", "QR code image path, - reads stdin")
	inspectCmd.Flags().StringVar(&opts.inspectReport, "report", string(decoder.ReportText), "report format: text, json or yaml")
	_ = inspectCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(decodeCmd, inspectCmd)
	return rootCmd
}

func runDecode(cmd *cobra.Command, opts *options) error {
	var format decoder.ReportFormat
	if opts.report != "" {
		f, err := decoder.ParseReportFormat(opts.report)
		if err != nil {
			return err
		}
		format = f
	}

	svc, err := newService(cmd, opts)
	if err != nil {
		return err
	}

	res, err := svc.Decode(cmd.Context(), decoder.Request{
		Input:     opts.input,
		Output:    opts.output,
		Binary:    opts.binary,
		Overwrite: opts.force,
	})
	if err != nil {
		return err
	}

	if format == "" {
		return nil
	}
	return res.Report(cmd.OutOrStdout(), format)
}

func runInspect(cmd *cobra.Command, opts *options) error {
	format, err := decoder.ParseReportFormat(opts.inspectReport)
	if err != nil {
		return err
	}

	svc, err := newService(cmd, opts)
	if err != nil {
		return err
	}

	res, err := svc.Inspect(cmd.Context(), opts.input)
	if err != nil {
		return err
	}
	return res.Report(cmd.OutOrStdout(), format)
}

func newService(cmd *cobra.Command, opts *options) (*decoder.Service, error) {
	if len(opts.envFiles) > 0 {
		if err := config.LoadEnv(opts.envFiles...); err != nil {
			return nil, err
		}
	}

	var cfg decoder.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	log, err := newLogger(cfg, opts.verbose, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	logger.SetAsDefault(log)

	return decoder.New(cfg,
		decoder.WithLogger(log),
		decoder.WithStdin(cmd.InOrStdin()),
	), nil
}

// newLogger starts from the environment preset, quiets it to info unless
// verbose, then applies explicit QRDECODE_LOG_* overrides.
func newLogger(cfg decoder.Config, verbose bool, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithOutput(w),
		logger.WithContextExtractors(decoder.RunIDExtractor),
	}

	level := slog.LevelInfo
	if strings.TrimSpace(cfg.LogLevel) != "" {
		l, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("QRDECODE_LOG_LEVEL: %w", err)
		}
		level = l
	}
	opts = append(opts, logger.WithLevel(level))

	if strings.TrimSpace(cfg.LogFormat) != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, fmt.Errorf("QRDECODE_LOG_FORMAT: %w", err)
		}
		opts = append(opts, logger.WithFormat(format))
	}

	if verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	return logger.New(opts...), nil
}
