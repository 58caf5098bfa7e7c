package entity

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// Playfield is the simulation area in pixels.
// Origin is the top-left corner and y grows downward.
type Playfield struct {
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside the playfield grown by margin on every side
func (p Playfield) Contains(x, y, margin float64) bool {
	return x >= -margin && x <= p.Width+margin && y >= -margin && y <= p.Height+margin
}

// Clamp keeps a point at least margin away from every edge
func (p Playfield) Clamp(x, y, margin float64) (float64, float64) {
	return clamp(x, margin, p.Width-margin), clamp(y, margin, p.Height-margin)
}

// Level describes one entry of the level table
type Level struct {
	ID          int
	Name        string
	Theme       string
	NormalWaves int
	BossHP      int
	BossName    string
}

// centerBox converts a center position and size into a top-left hitbox
func centerBox(x, y, w, h float64) (float64, float64, float64, float64) {
	return x - w/2, y - h/2, w, h
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
