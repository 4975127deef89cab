// Package vision answers line-of-sight queries over a dungeon grid.
package vision

import (
	"math"

	"github.com/samdwyer/roomcrawl/internal/world"
)

// Passability is the view of the map line-of-sight needs.
type Passability interface {
	IsPassable(x, y int) bool
}

// IsVisible reports whether to can be seen from from.
//
// The ray is sampled at whole steps along the straight line, truncating each
// interpolated coordinate. Only cells strictly between the endpoints are
// tested, so a wall is visible when the cells leading up to it are open.
// Sampling is coarse: cells may be skipped or repeated at shallow angles and
// the result is not symmetric in from and to.
func IsVisible(grid Passability, from, to world.Point) bool {
	dx := to.X - from.X
	dy := to.Y - from.Y
	distance := int(math.Sqrt(float64(dx*dx + dy*dy)))

	for i := 1; i < distance; i++ {
		x := from.X + dx*i/distance
		y := from.Y + dy*i/distance
		if !grid.IsPassable(x, y) {
			return false
		}
	}
	return true
}
