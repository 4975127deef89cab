package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDungeonReproducibility(t *testing.T) {
	// Generate two dungeons with the same seed
	seed := int64(12345)

	rng1 := rand.New(rand.NewSource(seed))
	rng2 := rand.New(rand.NewSource(seed))

	ctx := context.Background()
	d1, err := Generate(ctx, rng1, DefaultParams())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	d2, err := Generate(ctx, rng2, DefaultParams())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Verify same number of rooms
	if len(d1.Rooms) != len(d2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(d1.Rooms), len(d2.Rooms))
	}

	// Verify rooms are in same positions
	for i := range d1.Rooms {
		r1, r2 := d1.Rooms[i], d2.Rooms[i]
		if r1 != r2 {
			t.Errorf("Room %d mismatch: (%d,%d,%d,%d) != (%d,%d,%d,%d)",
				i, r1.X, r1.Y, r1.Width, r1.Height,
				r2.X, r2.Y, r2.Width, r2.Height)
		}
	}

	// Verify tiles are identical
	if d1.Grid.Width() != d2.Grid.Width() || d1.Grid.Height() != d2.Grid.Height() {
		t.Fatalf("Grid size mismatch: %dx%d != %dx%d",
			d1.Grid.Width(), d1.Grid.Height(), d2.Grid.Width(), d2.Grid.Height())
	}
	for y := 0; y < d1.Grid.Height(); y++ {
		for x := 0; x < d1.Grid.Width(); x++ {
			if d1.Grid.At(x, y) != d2.Grid.At(x, y) {
				t.Errorf("Tile mismatch at (%d,%d): %c != %c", x, y, d1.Grid.At(x, y), d2.Grid.At(x, y))
			}
		}
	}
}

func TestDungeonDifferentSeeds(t *testing.T) {
	// Generate two dungeons with different seeds - they should be different
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(54321))

	ctx := context.Background()
	d1, err := Generate(ctx, rng1, DefaultParams())
	require.NoError(t, err)
	d2, err := Generate(ctx, rng2, DefaultParams())
	require.NoError(t, err)

	identical := len(d1.Rooms) == len(d2.Rooms) &&
		d1.Grid.Width() == d2.Grid.Width() &&
		d1.Grid.Height() == d2.Grid.Height()
	for i := 0; identical && i < len(d1.Rooms); i++ {
		if d1.Rooms[i] != d2.Rooms[i] {
			identical = false
		}
	}

	if identical {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

func TestGenerateRanges(t *testing.T) {
	p := DefaultParams()
	for seed := int64(1); seed <= 50; seed++ {
		layout, err := Generate(context.Background(), rand.New(rand.NewSource(seed)), p)
		require.NoError(t, err, "seed %d", seed)

		assert.GreaterOrEqual(t, layout.Grid.Width(), p.MinMapSize)
		assert.Less(t, layout.Grid.Width(), p.MaxMapSize)
		assert.GreaterOrEqual(t, layout.Grid.Height(), p.MinMapSize)
		assert.Less(t, layout.Grid.Height(), p.MaxMapSize)
		assert.GreaterOrEqual(t, len(layout.Rooms), p.MinRooms)
		assert.Less(t, len(layout.Rooms), p.MaxRooms)

		for _, r := range layout.Rooms {
			assert.GreaterOrEqual(t, r.Width, p.MinRoomSize)
			assert.Less(t, r.Width, p.MaxRoomSize)
			assert.GreaterOrEqual(t, r.Height, p.MinRoomSize)
			assert.Less(t, r.Height, p.MaxRoomSize)
			// one tile margin on every side
			assert.GreaterOrEqual(t, r.X, 1)
			assert.GreaterOrEqual(t, r.Y, 1)
			assert.Less(t, r.X+r.Width, layout.Grid.Width())
			assert.Less(t, r.Y+r.Height, layout.Grid.Height())
		}
	}
}

func TestGenerateProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		layout, err := Generate(context.Background(), rand.New(rand.NewSource(seed)), DefaultParams())
		if err != nil {
			rt.Fatalf("Generate(seed=%d): %v", seed, err)
		}

		for i := range layout.Rooms {
			for j := i + 1; j < len(layout.Rooms); j++ {
				if layout.Rooms[i].Intersects(layout.Rooms[j]) {
					rt.Fatalf("rooms %d %+v and %d %+v overlap", i, layout.Rooms[i], j, layout.Rooms[j])
				}
			}
		}

		g := layout.Grid
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				covered := false
				for _, r := range layout.Rooms {
					if r.Contains(x, y) {
						covered = true
						break
					}
				}
				if covered != g.IsPassable(x, y) {
					rt.Fatalf("tile (%d,%d): covered=%v passable=%v", x, y, covered, g.IsPassable(x, y))
				}
			}
		}

		first := layout.Rooms[0]
		spawn := layout.Spawn()
		if spawn.X != first.X+first.Width/2 || spawn.Y != first.Y+first.Height/2 {
			rt.Fatalf("spawn %+v is not the center of %+v", spawn, first)
		}
	})
}

func TestGenerateRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"empty map range", func(p *Params) { p.MaxMapSize = p.MinMapSize }},
		{"map too small for rooms", func(p *Params) { p.MinMapSize, p.MaxMapSize = 11, 20 }},
		{"no rooms", func(p *Params) { p.MinRooms = 0 }},
		{"empty room count range", func(p *Params) { p.MaxRooms = p.MinRooms }},
		{"empty room size range", func(p *Params) { p.MinRoomSize = p.MaxRoomSize }},
		{"zero attempts", func(p *Params) { p.MaxAttempts = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			layout, err := Generate(context.Background(), rand.New(rand.NewSource(1)), p)
			assert.Nil(t, layout)
			assert.True(t, errors.Is(err, ErrInvalidParams), "got %v", err)
		})
	}
}

func TestGeneratePlacementExhausted(t *testing.T) {
	// Every candidate lands on (1,1), so the second room can never be placed.
	p := Params{
		MinMapSize:  12,
		MaxMapSize:  13,
		MinRooms:    2,
		MaxRooms:    3,
		MinRoomSize: 3,
		MaxRoomSize: 10,
		MaxAttempts: 5,
	}

	layout, err := Generate(context.Background(), rand.New(rand.NewSource(7)), p)
	assert.Nil(t, layout)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlacementExhausted)
	assert.Contains(t, err.Error(), "room 1 of 2")
}

func TestDefaultParamsValid(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())
}
