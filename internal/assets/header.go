package assets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

//go:embed logo.png
var defaultLogo []byte

// opaqueAlpha is the minimum alpha for a pixel to be painted.
const opaqueAlpha = 0x80

// Block is one character cell of the header. Each cell covers two vertically
// stacked pixels so the image keeps a square-ish aspect ratio in a terminal.
type Block struct {
	Top          color.NRGBA
	Bottom       color.NRGBA
	TopOpaque    bool
	BottomOpaque bool
}

// Empty reports whether neither half of the block is painted.
func (b Block) Empty() bool {
	return !b.TopOpaque && !b.BottomOpaque
}

// Header is an immutable image rescaled to a fixed cell grid.
type Header struct {
	cols   int
	rows   int
	blocks []Block
}

// Size returns the header dimensions in cells.
func (h *Header) Size() (cols, rows int) {
	if h == nil {
		return 0, 0
	}
	return h.cols, h.rows
}

// At returns the block at column x, row y. Out of range coordinates yield an
// empty block.
func (h *Header) At(x, y int) Block {
	if h == nil || x < 0 || y < 0 || x >= h.cols || y >= h.rows {
		return Block{}
	}
	return h.blocks[y*h.cols+x]
}

// FromImage rescales img to cols x rows cells.
func FromImage(img image.Image, cols, rows int) (*Header, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid header size %dx%d", cols, rows)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("header image is empty")
	}
	dst := image.NewNRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	h := &Header{cols: cols, rows: rows, blocks: make([]Block, cols*rows)}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := dst.NRGBAAt(x, y*2)
			bottom := dst.NRGBAAt(x, y*2+1)
			h.blocks[y*cols+x] = Block{
				Top:          top,
				Bottom:       bottom,
				TopOpaque:    top.A >= opaqueAlpha,
				BottomOpaque: bottom.A >= opaqueAlpha,
			}
		}
	}
	return h, nil
}

// Decode reads an encoded image (png, jpeg, webp or bmp) and rescales it.
func Decode(r io.Reader, cols, rows int) (*Header, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode header image: %w", err)
	}
	return FromImage(img, cols, rows)
}

// Load reads the header image at path, or the built-in logo when path is
// empty.
func Load(path string, cols, rows int) (*Header, error) {
	if path == "" {
		return Decode(bytes.NewReader(defaultLogo), cols, rows)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open header image: %w", err)
	}
	defer f.Close()
	return Decode(f, cols, rows)
}
