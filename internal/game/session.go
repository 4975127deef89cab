package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/samdwyer/roomcrawl/internal/entity"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
	"github.com/samdwyer/roomcrawl/internal/world"
)

// GenerateFunc builds a new dungeon layout.
type GenerateFunc func(ctx context.Context, rng *rand.Rand, p world.Params) (*world.Layout, error)

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) { s.logger = logger }
}

// WithGenerator replaces the dungeon generator.
func WithGenerator(fn GenerateFunc) SessionOption {
	return func(s *Session) { s.generate = fn }
}

// Session owns the grid and the character for one run. It is not safe for
// concurrent use; the game loop is its only caller.
type Session struct {
	id       uuid.UUID
	params   world.Params
	rng      *rand.Rand
	generate GenerateFunc
	logger   *zap.Logger

	grid  *world.Grid
	hero  *entity.Character
	state State
}

// NewSession generates the first dungeon and places the character at the
// center of its first room.
func NewSession(ctx context.Context, params world.Params, rng *rand.Rand, opts ...SessionOption) (*Session, error) {
	s := &Session{
		id:       uuid.New(),
		params:   params,
		rng:      rng,
		generate: world.Generate,
		logger:   zap.NewNop(),
		state:    StateRunning,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session_id", s.id.String()))

	layout, err := s.generate(ctx, s.rng, s.params)
	if err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}

	s.grid = layout.Grid
	spawn := layout.Spawn()
	s.hero = entity.NewCharacter(spawn.X, spawn.Y)

	s.logger.Info("dungeon generated",
		zap.Int("width", s.grid.Width()),
		zap.Int("height", s.grid.Height()),
		zap.Int("rooms", len(layout.Rooms)),
		zap.Int("spawn_x", spawn.X),
		zap.Int("spawn_y", spawn.Y),
	)
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Grid returns the current dungeon grid.
func (s *Session) Grid() *world.Grid { return s.grid }

// Character returns the player character.
func (s *Session) Character() *entity.Character { return s.hero }

// State returns the run state.
func (s *Session) State() State { return s.state }

// Apply performs one command. Blocked moves and unbound keys are silent
// no-ops; only a failed regeneration returns an error.
func (s *Session) Apply(ctx context.Context, cmd Command) error {
	if s.state != StateRunning {
		return nil
	}

	switch cmd {
	case CommandQuit:
		s.state = StateTerminated
		s.logger.Info("quit")
	case CommandRegenerate:
		return s.Regenerate(ctx)
	default:
		if dx, dy, ok := cmd.Delta(); ok {
			s.Move(dx, dy)
		}
	}
	return nil
}

// Move steps the character by (dx, dy) if the destination is on the grid and
// passable. It reports whether the character moved.
func (s *Session) Move(dx, dy int) bool {
	dest := s.hero.Position().Add(dx, dy)
	if !s.grid.InBounds(dest.X, dest.Y) || !s.grid.IsPassable(dest.X, dest.Y) {
		s.logger.Debug("move blocked", zap.Int("x", dest.X), zap.Int("y", dest.Y))
		return false
	}
	s.hero.Move(dx, dy)
	return true
}

// Regenerate replaces the grid with a freshly generated dungeon and moves
// the character to the new first room's center. Health is kept. On failure
// the current grid and position are left untouched.
func (s *Session) Regenerate(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.regenerate")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", s.id.String()))

	layout, err := s.generate(ctx, s.rng, s.params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "regenerate failed")
		return fmt.Errorf("regenerate dungeon: %w", err)
	}

	s.grid = layout.Grid
	s.hero.PlaceAt(layout.Spawn())

	span.SetAttributes(
		attribute.Int("dungeon.width", s.grid.Width()),
		attribute.Int("dungeon.height", s.grid.Height()),
		attribute.Int("dungeon.rooms", len(layout.Rooms)),
	)
	s.logger.Info("dungeon regenerated",
		zap.Int("width", s.grid.Width()),
		zap.Int("height", s.grid.Height()),
		zap.Int("rooms", len(layout.Rooms)),
		zap.Int("spawn_x", s.hero.X),
		zap.Int("spawn_y", s.hero.Y),
	)
	return nil
}
