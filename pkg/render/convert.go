package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Converter is the external program used for SVG to PDF conversion.
const Converter = "rsvg-convert"

// ErrConverterMissing is returned when [Converter] is not on PATH.
var ErrConverterMissing = errors.New(Converter + " not found; install librsvg (brew install librsvg, apt install librsvg2-bin)")

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// The conversion is killed if ctx is cancelled.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	bin, err := exec.LookPath(Converter)
	if err != nil {
		return nil, ErrConverterMissing
	}

	cmd := exec.CommandContext(ctx, bin, "-f", "pdf")
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", Converter, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", Converter, err)
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%s produced no output", Converter)
	}
	return out.Bytes(), nil
}
