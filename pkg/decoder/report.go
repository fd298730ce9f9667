package decoder

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/qrdecode/pkg/payload"
)

// Result describes one decoded payload.
type Result struct {
	RunID      string       `json:"run_id" yaml:"run_id"`
	Input      string       `json:"input" yaml:"input"`
	Output     string       `json:"output,omitempty" yaml:"output,omitempty"`
	Kind       payload.Kind `json:"kind" yaml:"kind"`
	Base64     bool         `json:"base64" yaml:"base64"`
	Binary     bool         `json:"binary" yaml:"binary"`
	InputSize  int          `json:"input_size" yaml:"input_size"`
	OutputSize int          `json:"output_size" yaml:"output_size"`
	MIMEType   string       `json:"mime_type" yaml:"mime_type"`
	SHA256     string       `json:"sha256" yaml:"sha256"`
	Text       string       `json:"text,omitempty" yaml:"text,omitempty"`

	// Content is the resolved payload. It is never part of a report.
	Content []byte `json:"-" yaml:"-"`
}

// ReportFormat selects how Report renders a Result.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportJSON ReportFormat = "json"
	ReportYAML ReportFormat = "yaml"
)

// ParseReportFormat accepts text, json and yaml (case-insensitive, "yml" too).
func ParseReportFormat(name string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return ReportText, nil
	case "json":
		return ReportJSON, nil
	case "yaml", "yml":
		return ReportYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportFormat, name)
}

// Report writes r to w in the given format.
func (r *Result) Report(w io.Writer, format ReportFormat) error {
	switch format {
	case ReportText:
		return r.writeText(w)
	case ReportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case ReportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownReportFormat, format)
}

func (r *Result) writeText(w io.Writer) error {
	rows := [][2]string{
		{"run id", r.RunID},
		{"input", r.Input},
	}
	if r.Output != "" {
		rows = append(rows,
			[2]string{"output", r.Output},
			[2]string{"binary", strconv.FormatBool(r.Binary)},
		)
	}
	rows = append(rows,
		[2]string{"kind", r.Kind.String()},
		[2]string{"base64", strconv.FormatBool(r.Base64)},
		[2]string{"input size", strconv.Itoa(r.InputSize)},
		[2]string{"output size", strconv.Itoa(r.OutputSize)},
		[2]string{"mime type", r.MIMEType},
		[2]string{"sha256", r.SHA256},
	)
	if r.Text != "" {
		rows = append(rows, [2]string{"text", strconv.Quote(r.Text)})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
