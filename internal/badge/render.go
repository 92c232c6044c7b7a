package badge

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

const (
	// IconSize is the output resolution of every badge.
	IconSize = 32

	// renderSize is the internal low-resolution canvas the badge is painted
	// at before the nearest-neighbor upscale. Implementation constant, not
	// configurable per call.
	renderSize = 16

	// stripReference is the context strip height at a 32px reference
	// resolution; the actual strip scales proportionally with renderSize.
	stripReference = 5
)

func nrgba(c RGBColor) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Render paints a badge from a palette and visit grid.
//
// The low-resolution canvas is laid out as a bottom context strip of solid
// profile color with the machine area above it. The machine area is first
// filled with the machine color, then overlaid cell by cell from the visit
// grid: untouched cells stay plain, single-visit cells get the mid-contrast
// color, multi-visit cells the high-contrast color, and the endpoint cell is
// overpainted with the profile color regardless of its density. Cell
// boundaries come from proportional integer division, so cells may differ by
// one pixel but always tile the area exactly.
//
// The canvas is then upscaled to IconSize with nearest-neighbor sampling;
// no smoothing, by intent — the blocky edges are the badge aesthetic.
// The returned image is IconSize x IconSize and fully opaque; the caller
// owns it.
func Render(palette Palette, grid *VisitGrid) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))

	stripH := stripReference * renderSize / 32
	areaH := renderSize - stripH

	draw.Draw(canvas, image.Rect(0, 0, renderSize, areaH),
		image.NewUniform(nrgba(palette.Machine)), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, areaH, renderSize, renderSize),
		image.NewUniform(nrgba(palette.Profile)), image.Point{}, draw.Src)

	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			fill, ok := cellColor(palette, grid, col, row)
			if !ok {
				continue
			}
			rect := image.Rect(
				col*renderSize/GridCols,
				row*areaH/GridRows,
				(col+1)*renderSize/GridCols,
				(row+1)*areaH/GridRows,
			)
			draw.Draw(canvas, rect, image.NewUniform(nrgba(fill)), image.Point{}, draw.Src)
		}
	}

	return imaging.Resize(canvas, IconSize, IconSize, imaging.NearestNeighbor)
}

// cellColor picks the overlay color for one grid cell, or ok=false when the
// cell stays plain machine color.
func cellColor(palette Palette, grid *VisitGrid, col, row int) (RGBColor, bool) {
	if col == grid.FinalX && row == grid.FinalY {
		return palette.Endpoint, true
	}
	switch n := grid.Counts[row][col]; {
	case n > 1:
		return palette.HighContrast, true
	case n == 1:
		return palette.MidContrast, true
	default:
		return RGBColor{}, false
	}
}
