package paint

import (
	"fmt"
	"image"
)

// Request bundles the parameters of one fill.
type Request struct {
	// Seed is the starting pixel. It must lie inside the buffer.
	Seed image.Point

	// Target is the color being replaced, normally the seed's own color.
	Target Pixel

	// Replacement is written over every pixel of the region.
	Replacement Pixel

	// Tolerance is the largest Diff from Target still considered part of
	// the region. Must be >= 0.
	Tolerance int

	// Antialias fades the replacement toward the original color as a
	// pixel's Diff approaches Tolerance.
	Antialias bool
}

// Stats describes what a fill touched.
type Stats struct {
	// Filled is the number of pixels that were written.
	Filled int

	// Bounds is the smallest rectangle containing every written pixel. It
	// is empty when Filled is 0.
	Bounds image.Rectangle
}

// Fill replaces the 4-connected region around seed whose pixels are within
// tolerance of target. See Request for the meaning of each argument.
func Fill(b *Buffer, seed image.Point, target, replacement Pixel, tolerance int, antialias bool) Stats {
	return Request{
		Seed:        seed,
		Target:      target,
		Replacement: replacement,
		Tolerance:   tolerance,
		Antialias:   antialias,
	}.Apply(b)
}

// Apply runs the fill on b, mutating it in place.
//
// The region is resolved one scanline span at a time. Each popped seed is
// extended left and right while pixels match the target; the whole span is
// then marked visited and dropped from the work-set, and the rows above and
// below contribute a single new seed per run of matching pixels. Every
// pixel is tested at most once per visit, so the work is bounded by the
// size of the buffer.
//
// Apply panics if the seed is outside b or the tolerance is negative.
func (r Request) Apply(b *Buffer) Stats {
	if !b.InBounds(r.Seed.X, r.Seed.Y) {
		panic(fmt.Sprintf("paint: seed %v outside %dx%d buffer", r.Seed, b.Width(), b.Height()))
	}
	if r.Tolerance < 0 {
		panic(fmt.Sprintf("paint: negative tolerance %d", r.Tolerance))
	}

	f := &filler{
		Request: r,
		buf:     b,
		visited: newIndexSet(b.Len()),
		pending: newPendingSet(b.Len()),
	}
	f.pending.insert(b.Index(r.Seed.X, r.Seed.Y))

	for f.pending.len() > 0 {
		i, _ := f.pending.pop()
		f.resolve(i)
	}
	return f.stats
}

type filler struct {
	Request
	buf     *Buffer
	visited indexSet
	pending *pendingSet
	stats   Stats
}

// resolve processes one pending seed index.
func (f *filler) resolve(i int) {
	if f.visited.has(i) {
		return
	}
	f.visited.add(i)

	diff := Diff(f.buf.Get(i), f.Target)
	if diff > f.Tolerance {
		return
	}

	x, y := f.buf.Coords(i)
	f.paint(i, diff)

	minX := x
	for minX > 0 && f.extend(f.buf.Index(minX-1, y)) {
		minX--
	}
	maxX := x
	for maxX < f.buf.Width()-1 && f.extend(f.buf.Index(maxX+1, y)) {
		maxX++
	}

	for j := f.buf.Index(minX, y); j <= f.buf.Index(maxX, y); j++ {
		f.visited.add(j)
		f.pending.remove(j)
	}
	f.stats.Bounds = f.stats.Bounds.Union(image.Rect(minX, y, maxX+1, y+1))

	if y > 0 {
		neighborRuns(f.buf, y-1, minX, maxX, f.eligible, f.pending.insert)
	}
	if y < f.buf.Height()-1 {
		neighborRuns(f.buf, y+1, minX, maxX, f.eligible, f.pending.insert)
	}
}

// extend tests one pixel next to the current span and paints it when it
// belongs to the region. Visited pixels end the span: they were resolved
// together with the rest of their own run.
func (f *filler) extend(i int) bool {
	if f.visited.has(i) {
		return false
	}
	diff := Diff(f.buf.Get(i), f.Target)
	if diff > f.Tolerance {
		return false
	}
	f.visited.add(i)
	f.paint(i, diff)
	return true
}

func (f *filler) eligible(i int) bool {
	return !f.visited.has(i) && Matches(f.buf.Get(i), f.Target, f.Tolerance)
}

func (f *filler) paint(i, diff int) {
	p := f.Replacement
	if f.Antialias {
		p = Blend(f.buf.Get(i), MultiplyAlpha(f.Replacement, AlphaMultiplier(diff, f.Tolerance)))
	}
	f.buf.Put(i, p)
	f.stats.Filled++
}

// AlphaMultiplier is the antialiasing weight for a pixel diff away from the
// target: 1 at the target color, falling linearly to 0 at the tolerance
// limit. A zero tolerance always yields 1.
func AlphaMultiplier(diff, tolerance int) float64 {
	if tolerance == 0 {
		return 1
	}
	return float64(tolerance-diff) / float64(tolerance)
}
