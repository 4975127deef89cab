package world

import "testing"

func TestRoomCenter(t *testing.T) {
	tests := []struct {
		room   Room
		cx, cy int
	}{
		{Room{X: 5, Y: 5, Width: 10, Height: 10}, 10, 10},
		{Room{X: 1, Y: 2, Width: 3, Height: 4}, 2, 4},
		{Room{X: 0, Y: 0, Width: 9, Height: 7}, 4, 3},
	}
	for _, tt := range tests {
		cx, cy := tt.room.Center()
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("%+v center = (%d,%d), want (%d,%d)", tt.room, cx, cy, tt.cx, tt.cy)
		}
	}
}

func TestRoomIntersects(t *testing.T) {
	a := Room{X: 0, Y: 0, Width: 4, Height: 4}
	tests := []struct {
		name  string
		other Room
		want  bool
	}{
		{"overlapping corner", Room{X: 3, Y: 3, Width: 4, Height: 4}, true},
		{"contained", Room{X: 1, Y: 1, Width: 2, Height: 2}, true},
		{"touching right edge", Room{X: 4, Y: 0, Width: 3, Height: 3}, false},
		{"touching bottom edge", Room{X: 0, Y: 4, Width: 3, Height: 3}, false},
		{"disjoint", Room{X: 10, Y: 10, Width: 3, Height: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}
