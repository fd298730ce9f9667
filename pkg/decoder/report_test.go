package decoder_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/qrdecode/pkg/decoder"
	"github.com/dmitrymomot/qrdecode/pkg/payload"
)

func sampleResult() *decoder.Result {
	return &decoder.Result{
		RunID:      "run-1",
		Input:      "qr.png",
		Output:     "/tmp/out.txt",
		Kind:       payload.KindBase64Raw,
		Base64:     true,
		InputSize:  8,
		OutputSize: 5,
		MIMEType:   "text/plain; charset=utf-8",
		SHA256:     "185f8db32271fe25f561a6fc938b2e264306ec304eda518007d1764826381969",
		Content:    []byte("Hello"),
	}
}

func TestParseReportFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]decoder.ReportFormat{
		"":      decoder.ReportText,
		"text":  decoder.ReportText,
		"JSON":  decoder.ReportJSON,
		"yaml":  decoder.ReportYAML,
		" yml ": decoder.ReportYAML,
	}
	for in, want := range tests {
		got, err := decoder.ParseReportFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := decoder.ParseReportFormat("xml")
	assert.ErrorIs(t, err, decoder.ErrUnknownReportFormat)
}

func TestResult_Report(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, sampleResult().Report(&buf, decoder.ReportText))

		out := buf.String()
		assert.Contains(t, out, "run id:")
		assert.Contains(t, out, "run-1")
		assert.Contains(t, out, "/tmp/out.txt")
		assert.Contains(t, out, "base64")
		assert.Contains(t, out, "185f8db3")
		assert.NotContains(t, out, "text:", "text is only shown when set")
	})

	t.Run("text with inspected content", func(t *testing.T) {
		t.Parallel()
		res := sampleResult()
		res.Output = ""
		res.Text = "Hello\n"

		var buf bytes.Buffer
		require.NoError(t, res.Report(&buf, decoder.ReportText))
		assert.Contains(t, buf.String(), `"Hello\n"`)
		assert.NotContains(t, buf.String(), "output:")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, sampleResult().Report(&buf, decoder.ReportJSON))

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "base64", got["kind"])
		assert.Equal(t, "run-1", got["run_id"])
		assert.Equal(t, float64(5), got["output_size"])
		assert.Equal(t, true, got["base64"])
		assert.NotContains(t, got, "content")
		assert.NotContains(t, got, "text")
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, sampleResult().Report(&buf, decoder.ReportYAML))

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "base64", got["kind"])
		assert.Equal(t, "qr.png", got["input"])
		assert.Equal(t, 8, got["input_size"])
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		err := sampleResult().Report(&bytes.Buffer{}, decoder.ReportFormat("xml"))
		assert.ErrorIs(t, err, decoder.ErrUnknownReportFormat)
	})
}
