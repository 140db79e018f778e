package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kpfaulkner/complexpatch/patch"
	"github.com/kpfaulkner/complexpatch/util"
)

func joinStrings[T fmt.Stringer](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// writeReport prints a human readable summary of cp. Transparent grid cells are drawn
// as '.', opaque ones as '#'.
func writeReport(w io.Writer, cp *patch.ComplexPatch) error {
	var sb strings.Builder

	slices := cp.Slices()
	spans := cp.ContentSpans()
	fmt.Fprintf(&sb, "flags: %s\n", slices.Flags())
	fmt.Fprintf(&sb, "slices x: %s\n", joinStrings(slices.AsSpanX()))
	fmt.Fprintf(&sb, "slices y: %s\n", joinStrings(slices.AsSpanY()))
	fmt.Fprintf(&sb, "scale slices: %d x %d\n", slices.CountScaleX(), slices.CountScaleY())
	fmt.Fprintf(&sb, "content spans x: %s\n", joinStrings(spans.AsSpanX()))
	fmt.Fprintf(&sb, "content spans y: %s\n", joinStrings(spans.AsSpanY()))
	fmt.Fprintf(&sb, "trimmed rectangle: %s\n", cp.TrimmedRectanglePx())

	mesh := cp.CalcMeshInfo()
	fmt.Fprintf(&sb, "mesh: %dx%d vertices (%d) %d indices\n", mesh.VertexCountX, mesh.VertexCountY, mesh.VertexCount, mesh.IndexCount)

	width, height := cp.GridSize()
	fmt.Fprintf(&sb, "grid %dx%d:", width, height)
	next := util.RangeIterator(width, height)
	for {
		x, y, err := next()
		if err != nil {
			break
		}
		if x == 0 {
			sb.WriteString("\n")
		}
		sb.WriteByte(util.IfThenElse(cp.IsCellTransparent(x, y), byte('.'), byte('#')))
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
