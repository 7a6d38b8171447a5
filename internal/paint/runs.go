package paint

// indexSet is a fixed-capacity bitset over buffer indices.
type indexSet []uint64

func newIndexSet(n int) indexSet {
	return make(indexSet, (n+63)/64)
}

func (s indexSet) has(i int) bool {
	return s[i>>6]&(1<<(uint(i)&63)) != 0
}

func (s indexSet) add(i int) {
	s[i>>6] |= 1 << (uint(i) & 63)
}

func (s indexSet) remove(i int) {
	s[i>>6] &^= 1 << (uint(i) & 63)
}

// pendingSet is the fill work-set. Membership is tracked in a bitset so
// that inserts are deduplicated and removals are O(1); the stack may hold
// stale entries, which pop skips.
type pendingSet struct {
	member indexSet
	stack  []int
	size   int
}

func newPendingSet(n int) *pendingSet {
	return &pendingSet{member: newIndexSet(n)}
}

func (p *pendingSet) insert(i int) {
	if p.member.has(i) {
		return
	}
	p.member.add(i)
	p.stack = append(p.stack, i)
	p.size++
}

func (p *pendingSet) remove(i int) {
	if !p.member.has(i) {
		return
	}
	p.member.remove(i)
	p.size--
}

func (p *pendingSet) len() int { return p.size }

// pop removes and returns an arbitrary member. ok is false when the set is
// empty.
func (p *pendingSet) pop() (i int, ok bool) {
	for len(p.stack) > 0 {
		i = p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		if p.member.has(i) {
			p.member.remove(i)
			p.size--
			return i, true
		}
	}
	return 0, false
}

// neighborRuns walks columns [x0, x1] of row y and returns the first index
// of every maximal run of consecutive columns accepted by eligible.
//
// Fill uses it on the rows above and below a resolved span: one seed per
// run is enough because the span scan recovers the rest of the run.
func neighborRuns(b *Buffer, y, x0, x1 int, eligible func(i int) bool, emit func(i int)) {
	inRun := false
	for x := x0; x <= x1; x++ {
		i := b.Index(x, y)
		if !eligible(i) {
			inRun = false
			continue
		}
		if !inRun {
			emit(i)
			inRun = true
		}
	}
}
