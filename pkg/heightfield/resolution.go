package heightfield

import (
	"fmt"
	"math"
)

// resolutionKind discriminates the Resolution variants.
type resolutionKind int

const (
	resolutionAuto resolutionKind = iota
	resolutionByWidth
	resolutionByShape
)

// Resolution selects the output shape of the mesh grid. It is one of:
// Auto (keep the source shape), ByWidth (fix the column count, derive
// rows from the source aspect ratio) or ByShape (explicit rows and
// columns).
type Resolution struct {
	kind resolutionKind
	rows int
	cols int
}

// Auto keeps the source grid shape.
func Auto() Resolution {
	return Resolution{kind: resolutionAuto}
}

// ByWidth fixes the output column count; the row count is derived as
// round(cols * R / C) from the source shape.
func ByWidth(cols int) Resolution {
	return Resolution{kind: resolutionByWidth, cols: cols}
}

// ByShape fixes both output dimensions.
func ByShape(rows, cols int) Resolution {
	return Resolution{kind: resolutionByShape, rows: rows, cols: cols}
}

// IsAuto reports whether the resolution keeps the source shape.
func (res Resolution) IsAuto() bool {
	return res.kind == resolutionAuto
}

// TargetShape resolves the variant against a source shape.
func (res Resolution) TargetShape(srcRows, srcCols int) (rows, cols int, err error) {
	switch res.kind {
	case resolutionAuto:
		return srcRows, srcCols, nil
	case resolutionByWidth:
		if res.cols < 2 {
			return 0, 0, fmt.Errorf("heightfield: resolution width %d is below the 2-sample minimum", res.cols)
		}
		rows = int(math.Round(float64(res.cols) * float64(srcRows) / float64(srcCols)))
		if rows < 2 {
			rows = 2
		}
		return rows, res.cols, nil
	case resolutionByShape:
		if res.rows < 2 || res.cols < 2 {
			return 0, 0, fmt.Errorf("heightfield: resolution shape %dx%d is below the 2-sample minimum", res.rows, res.cols)
		}
		return res.rows, res.cols, nil
	default:
		return 0, 0, fmt.Errorf("heightfield: unknown resolution kind %d", int(res.kind))
	}
}
