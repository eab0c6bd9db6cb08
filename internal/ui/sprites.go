// Package ui hosts the board view on Ebitengine: window, input, drawing and sound.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/hailam/chessview/internal/logx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/notnil/chess"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager is the image lookup service for piece sprites.
type SpriteManager struct {
	pieces      map[chess.Piece]*ebiten.Image
	size        int     // display size, one cell
	renderScale float64 // SVGs are rasterized larger and scaled down
}

// pieceFiles maps pieces to their asset file paths.
var pieceFiles = map[chess.Piece]string{
	chess.WhitePawn:   "assets/pieces/wP.svg",
	chess.WhiteKnight: "assets/pieces/wN.svg",
	chess.WhiteBishop: "assets/pieces/wB.svg",
	chess.WhiteRook:   "assets/pieces/wR.svg",
	chess.WhiteQueen:  "assets/pieces/wQ.svg",
	chess.WhiteKing:   "assets/pieces/wK.svg",
	chess.BlackPawn:   "assets/pieces/bP.svg",
	chess.BlackKnight: "assets/pieces/bN.svg",
	chess.BlackBishop: "assets/pieces/bB.svg",
	chess.BlackRook:   "assets/pieces/bR.svg",
	chess.BlackQueen:  "assets/pieces/bQ.svg",
	chess.BlackKing:   "assets/pieces/bK.svg",
}

// NewSpriteManager loads all twelve piece sprites at the given cell size.
// A piece whose asset fails to load is logged and drawn as nothing.
func NewSpriteManager(size int, log logx.Logger) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[chess.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	for piece, path := range pieceFiles {
		img, err := sm.rasterize(path)
		if err != nil {
			log.Warnf("piece sprite %s: %v", path, err)
			continue
		}
		sm.pieces[piece] = ebiten.NewImageFromImage(img)
	}
	return sm
}

func (sm *SpriteManager) rasterize(path string) (image.Image, error) {
	data, err := pieceAssets.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	renderSize := int(float64(sm.size) * sm.renderScale)
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// Image returns the sprite for a piece, or nil.
func (sm *SpriteManager) Image(p chess.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// DrawPieceAt draws a piece with its top-left corner at (x, y).
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p chess.Piece, x, y int) {
	sprite := sm.Image(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
