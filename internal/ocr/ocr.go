// Package ocr extracts visible text from screenshots via the tesseract
// command-line tool.
package ocr

import (
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Available reports whether tesseract can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("tesseract")
	return err == nil
}

// ExtractText runs OCR on the image at path. It returns an empty string on
// any failure, including tesseract being absent; text extraction is an
// optional enhancement and must never abort the pipeline.
func ExtractText(ctx context.Context, path string, log zerolog.Logger) string {
	if !Available() {
		return ""
	}

	cmd := exec.CommandContext(ctx, "tesseract", path, "stdout", "--psm", "6")
	out, err := cmd.Output()
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("text extraction failed")
		return ""
	}
	return strings.TrimSpace(string(out))
}
