package paint

import (
	"image"
	"math/rand"
	"testing"
)

var (
	black = Pixel{0, 0, 0, 255}
	white = Pixel{255, 255, 255, 255}
	red   = Pixel{255, 0, 0, 255}
	blue  = Pixel{0, 0, 255, 255}
)

// bufferFromRows builds a buffer from a grid of palette keys.
func bufferFromRows(t *testing.T, rows []string, palette map[byte]Pixel) *Buffer {
	t.Helper()
	b := NewBuffer(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.Width() {
			t.Fatalf("row %d has %d columns, want %d", y, len(row), b.Width())
		}
		for x := 0; x < len(row); x++ {
			p, ok := palette[row[x]]
			if !ok {
				t.Fatalf("no palette entry for %q", row[x])
			}
			b.Set(x, y, p)
		}
	}
	return b
}

// referenceRegion is a plain per-pixel BFS over the 4-connected region. It
// is the oracle the scanline fill is checked against.
func referenceRegion(b *Buffer, seed image.Point, target Pixel, tolerance int) []bool {
	in := make([]bool, b.Len())
	start := b.Index(seed.X, seed.Y)
	if !Matches(b.Get(start), target, tolerance) {
		return in
	}
	in[start] = true
	queue := []image.Point{seed}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := p.Add(d)
			if !b.InBounds(n.X, n.Y) {
				continue
			}
			i := b.Index(n.X, n.Y)
			if in[i] || !Matches(b.Get(i), target, tolerance) {
				continue
			}
			in[i] = true
			queue = append(queue, n)
		}
	}
	return in
}

func TestFill_SingleWhitePixelScenario(t *testing.T) {
	b := NewBuffer(4, 4)
	for i := 0; i < b.Len(); i++ {
		b.Put(i, black)
	}
	b.Set(3, 3, white)

	target := b.At(0, 0)
	stats := Fill(b, image.Pt(0, 0), target, red, 0, false)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := red
			if x == 3 && y == 3 {
				want = white
			}
			if got := b.At(x, y); got != want {
				t.Errorf("(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
	if stats.Filled != 15 {
		t.Errorf("Filled: got %d, want 15", stats.Filled)
	}
	if stats.Bounds != image.Rect(0, 0, 4, 4) {
		t.Errorf("Bounds: got %v, want (0,0)-(4,4)", stats.Bounds)
	}
}

func TestFill_OnePixel(t *testing.T) {
	for _, tol := range []int{0, 1, 100, 1020} {
		b := NewBuffer(1, 1)
		b.Set(0, 0, blue)
		Fill(b, image.Pt(0, 0), b.At(0, 0), red, tol, false)
		if got := b.At(0, 0); got != red {
			t.Errorf("tolerance %d: got %v, want %v", tol, got, red)
		}
	}
}

func TestFill_ToleranceCoversEverything(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := NewBuffer(17, 9)
	for i := 0; i < b.Len(); i++ {
		b.Put(i, Unpack(rng.Uint32()))
	}

	stats := Fill(b, image.Pt(8, 4), b.At(8, 4), red, 1020, false)

	for i := 0; i < b.Len(); i++ {
		if b.Get(i) != red {
			x, y := b.Coords(i)
			t.Fatalf("(%d,%d): got %v, want %v", x, y, b.Get(i), red)
		}
	}
	if stats.Filled != b.Len() {
		t.Errorf("Filled: got %d, want %d", stats.Filled, b.Len())
	}
}

func TestFill_Idempotent(t *testing.T) {
	b := bufferFromRows(t, []string{
		"kkwkk",
		"kwwwk",
		"kkwkk",
	}, map[byte]Pixel{'k': black, 'w': white})
	before := b.Clone()

	for run := 0; run < 2; run++ {
		Fill(b, image.Pt(2, 1), b.At(2, 1), white, 0, false)
		for i := 0; i < b.Len(); i++ {
			if b.Get(i) != before.Get(i) {
				t.Fatalf("run %d changed pixel %d: %v -> %v", run, i, before.Get(i), b.Get(i))
			}
		}
	}
}

func TestFill_RespectsFourConnectivity(t *testing.T) {
	// The diagonal w pixels touch the seed region only at corners.
	b := bufferFromRows(t, []string{
		"wkw",
		"kwk",
		"wkw",
	}, map[byte]Pixel{'k': black, 'w': white})

	Fill(b, image.Pt(1, 1), white, red, 0, false)

	want := bufferFromRows(t, []string{
		"wkw",
		"krk",
		"wkw",
	}, map[byte]Pixel{'k': black, 'w': white, 'r': red})
	for i := 0; i < b.Len(); i++ {
		if b.Get(i) != want.Get(i) {
			x, y := b.Coords(i)
			t.Errorf("(%d,%d): got %v, want %v", x, y, b.Get(i), want.Get(i))
		}
	}
}

func TestFill_Maze(t *testing.T) {
	rows := []string{
		"..........",
		".########.",
		".#......#.",
		".#.####.#.",
		".#.#..#.#.",
		".#.####.#.",
		".#.#....#.",
		".#.######.",
		".#........",
		"##########",
	}
	palette := map[byte]Pixel{'.': white, '#': black}
	b := bufferFromRows(t, rows, palette)
	region := referenceRegion(b, image.Pt(0, 0), white, 0)

	Fill(b, image.Pt(0, 0), white, red, 0, false)

	for i := 0; i < b.Len(); i++ {
		x, y := b.Coords(i)
		want := palette[rows[y][x]]
		if region[i] {
			want = red
		}
		if b.Get(i) != want {
			t.Errorf("(%d,%d): got %v, want %v", x, y, b.Get(i), want)
		}
	}
	// The pocket at (4,4)-(5,4) is walled off.
	if b.At(4, 4) != white {
		t.Errorf("enclosed pocket was filled: %v", b.At(4, 4))
	}
}

func TestFill_MatchesReferenceRegion(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	colors := []Pixel{black, white, {250, 250, 250, 255}, {0, 0, 6, 255}}

	for trial := 0; trial < 200; trial++ {
		w, h := 1+rng.Intn(24), 1+rng.Intn(16)
		b := NewBuffer(w, h)
		for i := 0; i < b.Len(); i++ {
			b.Put(i, colors[rng.Intn(len(colors))])
		}
		seed := image.Pt(rng.Intn(w), rng.Intn(h))
		tol := []int{0, 5, 10, 20}[rng.Intn(4)]
		target := b.At(seed.X, seed.Y)

		before := b.Clone()
		region := referenceRegion(before, seed, target, tol)
		stats := Fill(b, seed, target, red, tol, false)

		filled := 0
		for i := 0; i < b.Len(); i++ {
			if region[i] {
				filled++
				if b.Get(i) != red {
					t.Fatalf("trial %d: pixel %d in region not filled: %v", trial, i, b.Get(i))
				}
			} else if b.Get(i) != before.Get(i) {
				t.Fatalf("trial %d: pixel %d outside region changed: %v -> %v", trial, i, before.Get(i), b.Get(i))
			}
		}
		if stats.Filled != filled {
			t.Fatalf("trial %d: Filled %d, reference region has %d", trial, stats.Filled, filled)
		}
	}
}

func TestFill_AntialiasContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	b := NewBuffer(20, 20)
	for i := 0; i < b.Len(); i++ {
		v := uint8(rng.Intn(40))
		b.Put(i, Pixel{v, v, v, 255})
	}
	seed := image.Pt(10, 10)
	target := b.At(seed.X, seed.Y)
	before := b.Clone()
	region := referenceRegion(before, seed, target, 30)

	Fill(b, seed, target, red, 30, true)

	for i := 0; i < b.Len(); i++ {
		if !region[i] && b.Get(i) != before.Get(i) {
			t.Fatalf("pixel %d outside region changed", i)
		}
	}
}

func TestFill_AntialiasBoundaryUnchanged(t *testing.T) {
	edge := Pixel{10, 0, 0, 255}
	b := NewBuffer(3, 1)
	b.Set(0, 0, black)
	b.Set(1, 0, edge)
	b.Set(2, 0, black)

	// Diff(edge, black) == tolerance, so the multiplier is exactly 0.
	Fill(b, image.Pt(0, 0), black, blue, 10, true)

	if got := b.At(0, 0); got != blue {
		t.Errorf("seed: got %v, want %v", got, blue)
	}
	if got := b.At(1, 0); got != edge {
		t.Errorf("boundary pixel: got %v, want unchanged %v", got, edge)
	}
	if got := b.At(2, 0); got != blue {
		t.Errorf("far pixel: got %v, want %v", got, blue)
	}
}

func TestFill_AntialiasPartialWeight(t *testing.T) {
	mid := Pixel{0, 0, 10, 255}
	b := NewBuffer(2, 1)
	b.Set(0, 0, black)
	b.Set(1, 0, mid)

	Fill(b, image.Pt(0, 0), black, red, 20, true)

	want := Blend(mid, MultiplyAlpha(red, 0.5))
	if got := b.At(1, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := b.At(1, 0); got.R != 128 {
		t.Errorf("R: got %d, want 128", got.R)
	}
}

func TestFill_AntialiasZeroTolerance(t *testing.T) {
	b := NewBuffer(2, 2)
	for i := 0; i < b.Len(); i++ {
		b.Put(i, black)
	}

	Fill(b, image.Pt(1, 1), black, red, 0, true)

	for i := 0; i < b.Len(); i++ {
		if b.Get(i) != red {
			t.Errorf("pixel %d: got %v, want %v", i, b.Get(i), red)
		}
	}
}

func TestFill_SeedOutsideTolerance(t *testing.T) {
	b := NewBuffer(3, 3)
	for i := 0; i < b.Len(); i++ {
		b.Put(i, white)
	}

	stats := Fill(b, image.Pt(1, 1), black, red, 0, false)

	if stats.Filled != 0 || !stats.Bounds.Empty() {
		t.Errorf("expected no-op, got %+v", stats)
	}
	for i := 0; i < b.Len(); i++ {
		if b.Get(i) != white {
			t.Fatalf("pixel %d changed", i)
		}
	}
}

func TestFill_ReplacementMatchingTarget(t *testing.T) {
	// Replacement within tolerance of the target must not stop the fill
	// or make it loop.
	near := Pixel{2, 2, 2, 255}
	b := NewBuffer(6, 6)
	for i := 0; i < b.Len(); i++ {
		b.Put(i, black)
	}

	stats := Fill(b, image.Pt(3, 3), black, near, 10, false)

	if stats.Filled != 36 {
		t.Errorf("Filled: got %d, want 36", stats.Filled)
	}
	for i := 0; i < b.Len(); i++ {
		if b.Get(i) != near {
			t.Fatalf("pixel %d: got %v, want %v", i, b.Get(i), near)
		}
	}
}

func TestFill_Preconditions(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Buffer)
	}{
		{"seed left", func(b *Buffer) { Fill(b, image.Pt(-1, 0), black, red, 0, false) }},
		{"seed below", func(b *Buffer) { Fill(b, image.Pt(0, 2), black, red, 0, false) }},
		{"negative tolerance", func(b *Buffer) { Fill(b, image.Pt(0, 0), black, red, -1, false) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(NewBuffer(2, 2))
		})
	}
}

func TestAlphaMultiplier(t *testing.T) {
	tests := []struct {
		diff, tol int
		want      float64
	}{
		{0, 0, 1},
		{0, 10, 1},
		{5, 10, 0.5},
		{10, 10, 0},
	}
	for _, tt := range tests {
		if got := AlphaMultiplier(tt.diff, tt.tol); got != tt.want {
			t.Errorf("AlphaMultiplier(%d,%d): got %v, want %v", tt.diff, tt.tol, got, tt.want)
		}
	}
}

func BenchmarkFill(b *testing.B) {
	const size = 512
	src := NewBuffer(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/8+y/8)%7 == 0 {
				src.Set(x, y, black)
			} else {
				src.Set(x, y, white)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := src.Clone()
		Fill(buf, image.Pt(1, 1), white, red, 0, false)
	}
}
