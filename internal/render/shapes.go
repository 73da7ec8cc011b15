package render

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"

	"github.com/park285/cheese-chessboard/internal/board"
)

// fillPath rasterises the closed path built by trace onto img with anti-aliasing.
func fillPath(img *image.RGBA, clr color.Color, trace func(f *rasterx.Filler)) {
	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	filler := rasterx.NewFiller(b.Dx(), b.Dy(), scanner)
	filler.SetColor(clr)
	trace(filler)
	filler.Draw()
}

func polygon(f *rasterx.Filler, pts ...[2]float64) {
	if len(pts) < 3 {
		return
	}
	f.Start(rasterx.ToFixedP(pts[0][0], pts[0][1]))
	for _, p := range pts[1:] {
		f.Line(rasterx.ToFixedP(p[0], p[1]))
	}
	f.Stop(true)
}

func drawArrow(img *image.RGBA, from, to board.Position, origin image.Point, clr color.Color) {
	if from == to {
		return
	}
	start := squareRect(from, origin)
	end := squareRect(to, origin)
	half := float64(squareSize) / 2
	sx, sy := float64(start.Min.X)+half, float64(start.Min.Y)+half
	ex, ey := float64(end.Min.X)+half, float64(end.Min.Y)+half

	length := math.Hypot(ex-sx, ey-sy)
	ux, uy := (ex-sx)/length, (ey-sy)/length
	nx, ny := -uy, ux

	shaft := length - squareSize*0.45
	if shaft < squareSize*0.35 {
		shaft = length * 0.6
	}
	w := squareSize * 0.18
	head := squareSize * 0.32
	bx, by := sx+ux*shaft, sy+uy*shaft

	fillPath(img, clr, func(f *rasterx.Filler) {
		polygon(f,
			[2]float64{sx - nx*w, sy - ny*w},
			[2]float64{bx - nx*w, by - ny*w},
			[2]float64{bx - nx*head, by - ny*head},
			[2]float64{ex, ey},
			[2]float64{bx + nx*head, by + ny*head},
			[2]float64{bx + nx*w, by + ny*w},
			[2]float64{sx + nx*w, sy + ny*w},
		)
	})
}

func drawRoundedPanel(img *image.RGBA, rect image.Rectangle, radius int, clr color.Color) {
	if rect.Empty() {
		return
	}
	r := float64(max(0, min(radius, rect.Dx()/2, rect.Dy()/2)))
	fillPath(img, clr, func(f *rasterx.Filler) {
		rasterx.AddRoundRect(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Max.X), float64(rect.Max.Y),
			r, r, 0, rasterx.RoundGap, f)
	})
}
