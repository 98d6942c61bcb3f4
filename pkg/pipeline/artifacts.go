package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/IVANSLASH/framegen/pkg/render"
	"github.com/IVANSLASH/framegen/pkg/report"
)

// RenderArtifacts produces the requested artifact formats from a pipeline
// result. DOT output is reused for the SVG render when both are requested.
func RenderArtifacts(ctx context.Context, result *Result, opts Options) (map[string][]byte, error) {
	out := make(map[string][]byte, len(opts.Formats))

	var dot string
	needDOT := false
	for _, f := range opts.Formats {
		if f == FormatDOT || f == FormatSVG {
			needDOT = true
		}
	}
	if needDOT {
		dot = render.ToDOT(result.Model, render.Options{Detailed: opts.Detailed})
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatSummary:
			out[format] = []byte(report.NewSummary(result.Audit).String())

		case FormatNodes:
			var buf bytes.Buffer
			if err := report.WriteNodesCSV(&buf, result.Model); err != nil {
				return nil, fmt.Errorf("nodes csv: %w", err)
			}
			out[format] = buf.Bytes()

		case FormatElements:
			var buf bytes.Buffer
			if err := report.WriteElementsCSV(&buf, result.Model); err != nil {
				return nil, fmt.Errorf("elements csv: %w", err)
			}
			out[format] = buf.Bytes()

		case FormatDOT:
			out[format] = []byte(dot)

		case FormatSVG:
			svg, err := render.SVG(ctx, dot)
			if err != nil {
				return nil, fmt.Errorf("svg: %w", err)
			}
			out[format] = svg

		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}
	return out, nil
}
