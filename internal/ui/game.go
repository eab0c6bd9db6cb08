package ui

import (
	"github.com/hailam/chessview/internal/config"
	"github.com/hailam/chessview/internal/coords"
	"github.com/hailam/chessview/internal/logx"
	"github.com/hailam/chessview/internal/rules"
	"github.com/hailam/chessview/internal/selection"
	"github.com/hailam/chessview/internal/theme"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements ebiten.Game around one board view.
type Game struct {
	engine     *rules.Game
	mapper     coords.Mapper
	controller *selection.Controller

	renderer *Renderer
	input    *InputHandler
	audio    *AudioManager // nil when sound is off

	log logx.Logger
}

// NewGame creates the board view. Sprites and fonts are loaded here, before
// the first frame is drawn.
func NewGame(cfg config.Config, engine *rules.Game, log logx.Logger) *Game {
	mapper := coords.NewMapper(cfg.CellSize)

	fonts, err := LoadFonts()
	if err != nil {
		log.Warnf("fonts unavailable, status line disabled: %v", err)
	}

	g := &Game{
		engine:     engine,
		mapper:     mapper,
		controller: selection.NewController(engine, mapper, log),
		renderer:   NewRenderer(mapper, theme.ByName(cfg.Theme), NewSpriteManager(cfg.CellSize, log), fonts),
		input:      NewInputHandler(),
		log:        log,
	}
	if cfg.SoundEnabled {
		g.audio = NewAudioManager()
	}
	return g
}

// ScreenSize returns the window size in logical pixels.
func (g *Game) ScreenSize() (int, int) {
	w, h := g.mapper.ScreenSize()
	return w, h + StatusHeight
}

// Update handles one tick of input. Each click is handled to completion
// before the next tick or frame. Board clicks are dropped once the game is over.
func (g *Game) Update() error {
	g.input.Update()

	if IsKeyJustPressed(ebiten.KeyEscape) {
		g.controller.Reset()
	}
	if IsKeyJustPressed(ebiten.KeyN) {
		g.NewGameAction()
	}

	if x, y, ok := g.input.Click(); ok && !g.engine.Over() {
		g.onClick(x, y)
	}
	return nil
}

func (g *Game) onClick(x, y int) {
	r := g.controller.Click(x, y)
	switch r.Outcome {
	case selection.Moved:
		g.onMoveMade()
	case selection.Cancelled:
		g.audio.Play(SoundCancel)
	}
}

// onMoveMade plays feedback for the move just applied and detects game end.
func (g *Game) onMoveMade() {
	switch {
	case g.engine.Over():
		g.log.Infof("game over: %s", g.engine.Status())
		g.audio.Play(SoundGameEnd)
	case g.engine.InCheck():
		g.audio.Play(SoundCheck)
	case g.engine.WasCapture():
		g.audio.Play(SoundCapture)
	default:
		g.audio.Play(SoundMove)
	}
}

// NewGameAction resets the position and the selection.
func (g *Game) NewGameAction() {
	g.engine.Reset()
	g.controller.Reset()
	g.log.Infof("new game")
}

// Draw renders the board. It only reads engine and selection state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen, g.controller)

	if last, ok := g.engine.LastMove(); ok {
		g.renderer.DrawLastMove(screen, last.From, last.To)
	}
	if g.engine.InCheck() {
		g.renderer.DrawCheck(screen, g.engine.KingSquare(g.engine.Turn()))
	}

	g.renderer.DrawLabels(screen)
	g.renderer.DrawPieces(screen, g.engine)
	g.renderer.DrawDestinationMarkers(screen, g.controller.Destinations())
	g.renderer.DrawStatus(screen, g.engine.Status())
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}
