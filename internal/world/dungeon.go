package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

var (
	// ErrInvalidParams is returned when generation parameters describe
	// impossible geometry.
	ErrInvalidParams = errors.New("invalid dungeon parameters")
	// ErrPlacementExhausted is returned when a room could not be placed
	// without overlapping within the allowed number of attempts.
	ErrPlacementExhausted = errors.New("room placement attempts exhausted")
)

// Params bounds dungeon generation. Every range is half-open: [Min, Max).
type Params struct {
	MinMapSize  int `mapstructure:"min_map_size"`
	MaxMapSize  int `mapstructure:"max_map_size"`
	MinRooms    int `mapstructure:"min_rooms"`
	MaxRooms    int `mapstructure:"max_rooms"`
	MinRoomSize int `mapstructure:"min_room_size"`
	MaxRoomSize int `mapstructure:"max_room_size"`
	// MaxAttempts caps the candidates drawn for a single room index.
	MaxAttempts int `mapstructure:"max_attempts"`
}

// DefaultParams returns the standard generation bounds.
func DefaultParams() Params {
	return Params{
		MinMapSize:  50,
		MaxMapSize:  100,
		MinRooms:    3,
		MaxRooms:    15,
		MinRoomSize: 3,
		MaxRoomSize: 10,
		MaxAttempts: 100,
	}
}

// Validate checks that every range is non-empty and that the largest room
// still fits inside the smallest map with a one tile margin.
func (p Params) Validate() error {
	var errs []string
	if p.MinMapSize >= p.MaxMapSize {
		errs = append(errs, fmt.Sprintf("map size range [%d,%d) is empty", p.MinMapSize, p.MaxMapSize))
	}
	if p.MinRooms < 1 || p.MinRooms >= p.MaxRooms {
		errs = append(errs, fmt.Sprintf("room count range [%d,%d) is invalid", p.MinRooms, p.MaxRooms))
	}
	if p.MinRoomSize < 1 || p.MinRoomSize >= p.MaxRoomSize {
		errs = append(errs, fmt.Sprintf("room size range [%d,%d) is invalid", p.MinRoomSize, p.MaxRoomSize))
	}
	if p.MinMapSize-p.MaxRoomSize-1 < 1 {
		errs = append(errs, fmt.Sprintf("min map size %d leaves no room for rooms up to %d", p.MinMapSize, p.MaxRoomSize))
	}
	if p.MaxAttempts < 1 {
		errs = append(errs, fmt.Sprintf("max attempts must be >= 1, got %d", p.MaxAttempts))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidParams, strings.Join(errs, "; "))
	}
	return nil
}

// Layout is the result of one generation pass.
type Layout struct {
	Grid  *Grid
	Rooms []Room
}

// Spawn returns the center of the first room.
func (l *Layout) Spawn() Point {
	x, y := l.Rooms[0].Center()
	return Point{X: x, Y: y}
}

// Generate rolls new map dimensions and a room count, then places
// non-overlapping rooms and carves them into a fresh grid.
func Generate(ctx context.Context, rng *rand.Rand, p Params) (*Layout, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	if err := p.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid parameters")
		return nil, err
	}

	startTime := time.Now()

	width := p.MinMapSize + rng.Intn(p.MaxMapSize-p.MinMapSize)
	height := p.MinMapSize + rng.Intn(p.MaxMapSize-p.MinMapSize)
	grid := NewGrid(width, height)

	count := p.MinRooms + rng.Intn(p.MaxRooms-p.MinRooms)
	rooms := make([]Room, 0, count)
	rejected := 0

	for i := 0; i < count; i++ {
		room, misses, ok := placeRoom(rng, p, width, height, rooms)
		rejected += misses
		if !ok {
			err := fmt.Errorf("room %d of %d after %d attempts on %dx%d map: %w",
				i, count, p.MaxAttempts, width, height, ErrPlacementExhausted)
			span.RecordError(err)
			span.SetStatus(codes.Error, "placement exhausted")
			return nil, err
		}
		rooms = append(rooms, room)
		grid.Carve(room)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.rejected_candidates", rejected),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &Layout{Grid: grid, Rooms: rooms}, nil
}

// placeRoom draws candidates until one clears every accepted room.
// It returns the room, the number of rejected candidates and whether
// placement succeeded.
func placeRoom(rng *rand.Rand, p Params, width, height int, accepted []Room) (Room, int, bool) {
	misses := 0
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		candidate := Room{
			X:      rng.Intn(width-p.MaxRoomSize-1) + 1,
			Y:      rng.Intn(height-p.MaxRoomSize-1) + 1,
			Width:  p.MinRoomSize + rng.Intn(p.MaxRoomSize-p.MinRoomSize),
			Height: p.MinRoomSize + rng.Intn(p.MaxRoomSize-p.MinRoomSize),
		}
		if !overlapsAny(candidate, accepted) {
			return candidate, misses, true
		}
		misses++
	}
	return Room{}, misses, false
}

func overlapsAny(room Room, rooms []Room) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}
