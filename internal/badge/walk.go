package badge

import (
	"crypto/sha256"
	"strings"
)

const (
	// GridCols and GridRows fix the visit grid dimensions for the lifetime
	// of the badge format.
	GridCols = 8
	GridRows = 8

	// WalkSteps is the number of steps the hash walk takes: three visits
	// per cell on average, dense but still textured.
	WalkSteps = GridCols * GridRows * 3

	// sentinelHost replaces empty or whitespace-only host identifiers.
	sentinelHost = "unknown-host"
)

// diagonal step directions, indexed by a 2-bit group from the digest stream.
var walkDirections = [4][2]int{
	{-1, -1},
	{+1, -1},
	{-1, +1},
	{+1, +1},
}

// VisitGrid holds the per-cell visit counts produced by the hash walk,
// plus the walk's final position.
//
// A grid is created fresh per generation call and owned exclusively by it.
// Counts are never negative; the center cell starts at 1 before any step.
type VisitGrid struct {
	Counts [GridRows][GridCols]int // visit count per cell, [row][col]
	FinalX int                     // endpoint column, always in [0,GridCols-1]
	FinalY int                     // endpoint row, always in [0,GridRows-1]
}

// normalizeHost substitutes the sentinel for empty or whitespace-only
// identifiers. All other inputs pass through unchanged.
func normalizeHost(host string) string {
	if strings.TrimSpace(host) == "" {
		return sentinelHost
	}
	return host
}

// digestStream yields 2-bit groups from a chained SHA-256 digest.
//
// Bytes are consumed in digest order; within each byte the groups come from
// the least-significant pair upward. When the digest is exhausted, the
// previous raw digest is rehashed to extend the stream, so any number of
// steps can be driven without re-seeding from the original input.
type digestStream struct {
	digest [sha256.Size]byte
	group  int // next 2-bit group index within the current digest
}

func newDigestStream(seed string) *digestStream {
	return &digestStream{digest: sha256.Sum256([]byte(seed))}
}

// next returns the next 2-bit group in [0,3].
func (s *digestStream) next() int {
	if s.group >= sha256.Size*4 {
		s.digest = sha256.Sum256(s.digest[:])
		s.group = 0
	}
	b := s.digest[s.group/4]
	g := int(b>>(2*(s.group%4))) & 3
	s.group++
	return g
}

// Walk produces the deterministic visit grid for a host identifier.
//
// The walk starts at the grid center (GridCols/2, GridRows/2), counts that
// cell once, then takes WalkSteps diagonal steps driven by the digest
// stream. Each step clamps both coordinates into bounds: a boundary cell
// that would step outward stays pinned to the edge for that step, which
// deliberately biases edge and corner cells toward extra visits. Identical
// identifiers always produce identical grids and endpoints.
func Walk(host string) *VisitGrid {
	stream := newDigestStream(normalizeHost(host))

	grid := &VisitGrid{FinalX: GridCols / 2, FinalY: GridRows / 2}
	grid.Counts[grid.FinalY][grid.FinalX] = 1

	for step := 0; step < WalkSteps; step++ {
		dir := walkDirections[stream.next()]
		grid.FinalX = clamp(grid.FinalX+dir[0], 0, GridCols-1)
		grid.FinalY = clamp(grid.FinalY+dir[1], 0, GridRows-1)
		grid.Counts[grid.FinalY][grid.FinalX]++
	}
	return grid
}

// Total returns the sum of all visit counts. It always equals 1 + WalkSteps
// for grids produced by Walk.
func (g *VisitGrid) Total() int {
	total := 0
	for y := 0; y < GridRows; y++ {
		for x := 0; x < GridCols; x++ {
			total += g.Counts[y][x]
		}
	}
	return total
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
