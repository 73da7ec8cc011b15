package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io/fs"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/park285/cheese-chessboard/internal/board"
)

// Built-in silhouettes on a 45x45 view box; %[1]s is the body fill and %[2]s the outline.
var pieceShapes = map[board.PieceKind]string{
	board.Pawn: `<circle cx="22.5" cy="13" r="5" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<path d="M 15 35 L 30 35 L 26 19 L 19 19 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,
	board.Knight: `<path d="M 14 35 L 32 35 L 30 14 L 22 7 L 11 18 L 13 23 L 20 19 L 15 29 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,
	board.Bishop: `<circle cx="22.5" cy="7" r="2.5" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<path d="M 14 35 L 31 35 L 27 17 L 22.5 10 L 18 17 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,
	board.Rook: `<path d="M 11 9 L 15 9 L 15 12 L 20 12 L 20 9 L 25 9 L 25 12 L 30 12 L 30 9 L 34 9 L 33 16 L 12 16 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<path d="M 13 35 L 32 35 L 30 16 L 15 16 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,
	board.Queen: `<path d="M 11 35 L 34 35 L 37 12 L 29 24 L 22.5 9 L 16 24 L 8 12 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="8" cy="11" r="2" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="22.5" cy="8" r="2" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="37" cy="11" r="2" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,
	board.King: `<path d="M 21 3 L 24 3 L 24 7 L 28 7 L 28 10 L 24 10 L 24 17 L 21 17 L 21 10 L 17 10 L 17 7 L 21 7 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.2"/>
<path d="M 12 35 L 33 35 L 31 17 L 14 17 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,
}

const pieceBase = `<path d="M 9 39 L 36 39 L 36 35 L 9 35 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`

// builtinPieceSVG returns the embedded icon for p.
func builtinPieceSVG(p board.Piece) []byte {
	fill, stroke := "#f8f8f8", "#202020"
	if p.Color == board.Black {
		fill, stroke = "#262626", "#0a0a0a"
	}
	body := fmt.Sprintf(pieceShapes[p.Kind]+"\n"+pieceBase, fill, stroke)
	return []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">` + "\n" + body + "\n</svg>")
}

// pieceAssetName is the file looked up in an external piece set: wK.svg, bN.svg, ...
func pieceAssetName(p board.Piece) string {
	prefix := "w"
	if p.Color == board.Black {
		prefix = "b"
	}
	return fmt.Sprintf("%s%c.svg", prefix, p.Kind.Letter())
}

type pieceCacheKey struct {
	piece board.Piece
	size  int
}

// pieceSet rasterises piece icons and caches them per piece and size.
type pieceSet struct {
	files fs.FS // nil uses the built-in icons

	mu    sync.RWMutex
	cache map[pieceCacheKey]image.Image
}

func newPieceSet(files fs.FS) *pieceSet {
	return &pieceSet{files: files, cache: make(map[pieceCacheKey]image.Image)}
}

func (s *pieceSet) source(p board.Piece) ([]byte, error) {
	if s.files == nil {
		return builtinPieceSVG(p), nil
	}
	name := pieceAssetName(p)
	data, err := fs.ReadFile(s.files, name)
	if err != nil {
		return nil, fmt.Errorf("read piece asset %s: %w", name, err)
	}
	return data, nil
}

func (s *pieceSet) image(p board.Piece, size int) (image.Image, error) {
	key := pieceCacheKey{piece: p, size: size}

	s.mu.RLock()
	if img, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return img, nil
	}
	s.mu.RUnlock()

	data, err := s.source(p)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(sanitizeSVG(data)))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg: %w", err)
	}
	if icon.ViewBox.W <= 0 {
		icon.ViewBox.W = float64(size)
	}
	if icon.ViewBox.H <= 0 {
		icon.ViewBox.H = float64(size)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Transparent), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	s.mu.Lock()
	s.cache[key] = img
	s.mu.Unlock()

	return img, nil
}
