// Package fonts provides the typeface for raster rendering.
//
// The Go Regular face ships as a Go package, so raster output needs no
// font files on the host system.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/staircast/staircast/pkg/errors"
)

// FontFamily is the CSS font-family used by vector output so SVG and
// raster renderings match where the Go fonts are installed.
const FontFamily = `'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif`

var (
	regularOnce sync.Once
	regular     *truetype.Font
	regularErr  error
)

// Regular returns the parsed Go Regular typeface. Parsing happens once
// on first use.
func Regular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	if regularErr != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, regularErr, "parsing embedded font")
	}
	return regular, nil
}

// Face returns a rendering face at the given point size.
func Face(size float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72}), nil
}
