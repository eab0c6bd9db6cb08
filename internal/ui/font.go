package ui

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	statusFontSize = 14.0
	labelFontSize  = 10.0
)

// Fonts holds the faces used for the status line and board labels.
type Fonts struct {
	Status *text.GoTextFace
	Label  *text.GoTextFace
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, err
	}
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &Fonts{
		Status: &text.GoTextFace{Source: boldSource, Size: statusFontSize},
		Label:  &text.GoTextFace{Source: regularSource, Size: labelFontSize},
	}, nil
}
