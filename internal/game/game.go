package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
	"github.com/samdwyer/roomcrawl/internal/ui"
)

// Game holds the terminal and the running session.
type Game struct {
	cfg      Config
	logger   *zap.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
}

// New creates a new game instance on the process terminal.
func New(cfg Config, logger *zap.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(screen, cfg, logger)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to an already attached screen. The
// game takes ownership of the screen and closes it when Run returns.
func NewWithScreen(screen *ui.Screen, cfg Config, logger *zap.Logger) (*Game, error) {
	if cfg.FrameInterval <= 0 {
		return nil, errors.New("frame interval must be positive")
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Game{
		cfg:      cfg,
		logger:   logger,
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
	}, nil
}

// Run executes the main game loop until quit or ctx is cancelled. The
// screen is released on every return path, panics included.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	initCtx, initSpan := tracer.Start(ctx, "game.init")

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := NewSession(initCtx, g.cfg.Dungeon, rand.New(rand.NewSource(seed)), WithLogger(g.logger))
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return err
	}
	g.session = session

	start := session.Character().Position()
	initSpan.SetAttributes(
		attribute.String("session.id", session.ID().String()),
		attribute.Int64("game.seed", seed),
		attribute.Int("character.start_x", start.X),
		attribute.Int("character.start_y", start.Y),
	)
	initSpan.End()
	g.logger.Info("game started", zap.String("session_id", session.ID().String()), zap.Int64("seed", seed))

	ticker := time.NewTicker(g.cfg.FrameInterval)
	defer ticker.Stop()

	// Main game loop
	for session.State() == StateRunning {
		g.renderer.Render(session.Grid(), session.Character())

		ev := g.screen.Poll()
		if ev == nil {
			select {
			case <-ctx.Done():
				g.logger.Info("game interrupted", zap.Error(ctx.Err()))
				return nil
			case <-ticker.C:
			}
			continue
		}
		g.handleEvent(ctx, ev)
	}

	return nil
}

// Session returns the running session, or nil before Run has started it.
func (g *Game) Session() *Session {
	return g.session
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := Decode(ev)
		if err := g.session.Apply(ctx, cmd); err != nil {
			g.logger.Warn("command failed", zap.Stringer("command", cmd), zap.Error(err))
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}
