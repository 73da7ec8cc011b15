package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	"image/png"
	"io/fs"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/park285/cheese-chessboard/internal/board"
)

type RenderOptions struct {
	// Highlight marks the last move; nil draws no overlay.
	Highlight *board.Move
	HUDHeader string
}

type BoardRenderer interface {
	RenderPNG(ctx context.Context, b *board.Board, opts RenderOptions) ([]byte, error)
}

type Option func(*pngRenderer)

// WithPieceSet reads wK.svg, bQ.svg, ... from files instead of the built-in icons.
func WithPieceSet(files fs.FS) Option {
	return func(r *pngRenderer) { r.pieces = newPieceSet(files) }
}

type pngRenderer struct {
	pieces *pieceSet
	face   font.Face
}

func NewPNGRenderer(options ...Option) BoardRenderer {
	r := &pngRenderer{pieces: newPieceSet(nil), face: basicfont.Face7x13}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

const (
	squareSize   = 64
	boardPixels  = squareSize * board.Size
	sideMargin   = 28
	topMargin    = 64
	bottomMargin = 28
	titleHeight  = 28
	panelRadius  = 8
	titlePadX    = 16
)

func (r *pngRenderer) RenderPNG(ctx context.Context, b *board.Board, opts RenderOptions) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("board is nil")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	origin := image.Point{X: sideMargin, Y: topMargin}
	boardRect := image.Rect(origin.X, origin.Y, origin.X+boardPixels, origin.Y+boardPixels)
	img := image.NewRGBA(image.Rect(0, 0, boardPixels+sideMargin*2, boardPixels+topMargin+bottomMargin))
	imagedraw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, imagedraw.Src)

	grid := b.Snapshot()
	r.drawHUD(img, opts, boardRect)
	drawSquares(img, origin)
	if err := r.drawPieces(ctx, img, grid, origin); err != nil {
		return nil, err
	}
	drawHighlight(img, grid, opts.Highlight, origin)
	r.drawCoordinates(img, origin)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	backgroundColor           = color.RGBA{R: 40, G: 42, B: 54, A: 255}
	lightSquare               = color.RGBA{233, 207, 163, 255}
	darkSquare                = color.RGBA{187, 136, 96, 255}
	whiteMoveHighlightFill    = color.NRGBA{R: 255, G: 228, B: 120, A: 140}
	blackMoveHighlightArrow   = color.NRGBA{R: 148, G: 207, B: 255, A: 170}
	neutralMoveHighlightArrow = color.NRGBA{R: 182, G: 184, B: 190, A: 140}
	hudPanelColor             = color.NRGBA{R: 28, G: 31, B: 46, A: 250}
	hudTextPrimary            = color.NRGBA{R: 236, G: 239, B: 255, A: 255}
	coordinateTextColor       = color.NRGBA{R: 8, G: 214, B: 120, A: 255}
)

func squareRect(pos board.Position, origin image.Point) image.Rectangle {
	x := origin.X + pos.Col*squareSize
	y := origin.Y + pos.Row*squareSize
	return image.Rect(x, y, x+squareSize, y+squareSize)
}

// squareColor follows the usual pattern where a1 (row 7, col 0) is dark.
func squareColor(pos board.Position) color.Color {
	if (pos.Row+pos.Col)%2 == 1 {
		return darkSquare
	}
	return lightSquare
}

func drawSquares(dst imagedraw.Image, origin image.Point) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			pos := board.Position{Row: row, Col: col}
			imagedraw.Draw(dst, squareRect(pos, origin), image.NewUniform(squareColor(pos)), image.Point{}, imagedraw.Src)
		}
	}
}

func (r *pngRenderer) drawPieces(ctx context.Context, dst imagedraw.Image, grid [board.Size][board.Size]board.Cell, origin image.Point) error {
	for row := 0; row < board.Size; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for col := 0; col < board.Size; col++ {
			piece, ok := grid[row][col].Piece()
			if !ok {
				continue
			}
			icon, err := r.pieces.image(piece, squareSize)
			if err != nil {
				return err
			}
			imagedraw.Draw(dst, squareRect(board.Position{Row: row, Col: col}, origin), icon, image.Point{}, imagedraw.Over)
		}
	}
	return nil
}

func drawHighlight(img *image.RGBA, grid [board.Size][board.Size]board.Cell, highlight *board.Move, origin image.Point) {
	if highlight == nil || !highlight.From.InBounds() || !highlight.To.InBounds() {
		return
	}
	switch moverColor, ok := highlightMoverColor(grid, highlight); {
	case ok && moverColor == board.Black:
		drawArrow(img, highlight.From, highlight.To, origin, blackMoveHighlightArrow)
	case ok && moverColor == board.White:
		drawSquareOverlay(img, highlight.From, origin, whiteMoveHighlightFill)
		drawSquareOverlay(img, highlight.To, origin, whiteMoveHighlightFill)
	default:
		drawArrow(img, highlight.From, highlight.To, origin, neutralMoveHighlightArrow)
	}
}

func highlightMoverColor(grid [board.Size][board.Size]board.Cell, highlight *board.Move) (board.Color, bool) {
	if p, ok := grid[highlight.To.Row][highlight.To.Col].Piece(); ok {
		return p.Color, true
	}
	if p, ok := grid[highlight.From.Row][highlight.From.Col].Piece(); ok {
		return p.Color, true
	}
	return board.White, false
}

func drawSquareOverlay(img *image.RGBA, pos board.Position, origin image.Point, clr color.Color) {
	imagedraw.Draw(img, squareRect(pos, origin), image.NewUniform(clr), image.Point{}, imagedraw.Over)
}

func (r *pngRenderer) drawHUD(img *image.RGBA, opts RenderOptions, boardRect image.Rectangle) {
	title := strings.TrimSpace(opts.HUDHeader)
	if title == "" {
		return
	}
	drawer := &font.Drawer{Dst: img, Face: r.face}
	maxWidth := boardRect.Dx() - titlePadX*2
	title = truncateWithEllipsis(r.face, title, maxWidth)
	width := drawer.MeasureString(title).Round() + titlePadX*2
	bottom := boardRect.Min.Y - (topMargin-titleHeight)/2
	rect := image.Rect(boardRect.Min.X, bottom-titleHeight, boardRect.Min.X+width, bottom)
	drawRoundedPanel(img, rect, panelRadius, hudPanelColor)
	drawCenteredString(drawer, rect, title, hudTextPrimary)
}

func (r *pngRenderer) drawCoordinates(dst imagedraw.Image, origin image.Point) {
	drawer := &font.Drawer{Dst: dst, Face: r.face, Src: image.NewUniform(coordinateTextColor)}
	ascent := r.face.Metrics().Ascent.Ceil()
	boardEndY := origin.Y + boardPixels
	for i := 0; i < board.Size; i++ {
		rankCenter := origin.Y + i*squareSize + squareSize/2
		drawCenteredText(drawer, strconv.Itoa(board.Size-i), origin.X-sideMargin/2, rankCenter+ascent/2)
		fileCenter := origin.X + i*squareSize + squareSize/2
		drawCenteredText(drawer, string(rune('a'+i)), fileCenter, boardEndY+ascent+4)
	}
}

func truncateWithEllipsis(face font.Face, text string, maxWidth int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || maxWidth <= 0 || face == nil {
		return trimmed
	}
	drawer := font.Drawer{Face: face}
	if drawer.MeasureString(trimmed).Round() <= maxWidth {
		return trimmed
	}
	ellipsis := "..."
	if drawer.MeasureString(ellipsis).Round() > maxWidth {
		return ""
	}
	runes := []rune(trimmed)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + ellipsis
		if drawer.MeasureString(candidate).Round() <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

func drawCenteredString(drawer *font.Drawer, rect image.Rectangle, text string, clr color.Color) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	metrics := drawer.Face.Metrics()
	width := drawer.MeasureString(text).Round()
	x := max(rect.Min.X, rect.Min.X+(rect.Dx()-width)/2)
	baseline := rect.Min.Y + (rect.Dy()+metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	drawer.Src = image.NewUniform(clr)
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}

func drawCenteredText(drawer *font.Drawer, text string, centerX, baseline int) {
	width := drawer.MeasureString(text).Round()
	drawer.Dot = fixed.P(centerX-width/2, baseline)
	drawer.DrawString(text)
}
