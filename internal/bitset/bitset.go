// Package bitset implements a dense, variable-length bit-set over
// 64-bit words with boolean algebra and iteration.
//
// Grounded in original_source/src/bitset.c (raviX_bitmap_*), itself
// adapted from the MIR project. The logical size grows monotonically with
// the highest bit ever referenced; a bitset from New(0) (or the zero value)
// holds no backing array until a bit is set.
package bitset

const wordBits = 64

// BitSet is a dense bit-set. The zero value is an empty, usable bitset.
type BitSet struct {
	words []uint64 // len(words) == the logical length in words
}

// New returns an empty bitset, optionally pre-sized to hold initBits bits.
func New(initBits int) *BitSet {
	b := &BitSet{}
	if initBits > 0 {
		b.words = make([]uint64, 0, wordsFor(initBits))
	}
	return b
}

func wordsFor(nbits int) int {
	return (nbits + wordBits - 1) / wordBits
}

func (b *BitSet) expand(nbits int) {
	need := wordsFor(nbits)
	if need <= len(b.words) {
		return
	}
	if need <= cap(b.words) {
		old := len(b.words)
		b.words = b.words[:need]
		for i := old; i < need; i++ {
			b.words[i] = 0
		}
		return
	}
	grown := make([]uint64, need)
	copy(grown, b.words)
	b.words = grown
}

// Test reports the value of bit n; bits outside the logical length are 0.
func (b *BitSet) Test(n int) bool {
	w := n / wordBits
	if w >= len(b.words) {
		return false
	}
	sh := uint(n % wordBits)
	return (b.words[w]>>sh)&1 != 0
}

// Set turns bit n on, expanding the set if needed. Returns whether it
// flipped from 0 to 1.
func (b *BitSet) Set(n int) bool {
	b.expand(n + 1)
	w, sh := n/wordBits, uint(n%wordBits)
	was := (b.words[w]>>sh)&1 != 0
	b.words[w] |= 1 << sh
	return !was
}

// Clear turns bit n off. No-op outside the logical range. Returns whether
// it flipped from 1 to 0.
func (b *BitSet) Clear(n int) bool {
	w := n / wordBits
	if w >= len(b.words) {
		return false
	}
	sh := uint(n % wordBits)
	was := (b.words[w]>>sh)&1 != 0
	b.words[w] &^= 1 << sh
	return was
}

// setOrClearRange is the word-at-a-time range primitive shared by
// SetRange and ClearRange, mirroring raviX_bitmap_set_or_clear_bit_range_p.
func (b *BitSet) setOrClearRange(start, length int, set bool) bool {
	if length <= 0 {
		return false
	}
	b.expand(start + length)
	changed := false
	nb, remaining := start, length
	for remaining > 0 {
		w := nb / wordBits
		lsh := uint(nb % wordBits)
		var rsh uint
		if remaining >= wordBits-int(lsh) {
			rsh = 0
		} else {
			rsh = uint(wordBits - (nb+remaining)%wordBits)
		}
		mask := (^uint64(0) >> (rsh + lsh)) << lsh
		if set {
			if (^b.words[w])&mask != 0 {
				changed = true
			}
			b.words[w] |= mask
		} else {
			if b.words[w]&mask != 0 {
				changed = true
			}
			b.words[w] &^= mask
		}
		rangeLen := wordBits - int(rsh) - int(lsh)
		remaining -= rangeLen
		nb += rangeLen
	}
	return changed
}

// SetRange sets [start, start+length) and reports whether any bit changed.
func (b *BitSet) SetRange(start, length int) bool {
	return b.setOrClearRange(start, length, true)
}

// ClearRange clears [start, start+length) and reports whether any bit changed.
func (b *BitSet) ClearRange(start, length int) bool {
	return b.setOrClearRange(start, length, false)
}

// Copy makes dst a bit-equal snapshot of src, trimming dst's logical
// length to src's if src is shorter.
func Copy(dst, src *BitSet) {
	if len(dst.words) >= len(src.words) {
		dst.words = dst.words[:len(src.words)]
	} else {
		dst.expand(len(src.words) * wordBits)
	}
	copy(dst.words, src.words)
}

// Equal reports whether a and b have the same bits set, irrespective of
// trailing all-zero words.
func Equal(a, b *BitSet) bool {
	if len(a.words) > len(b.words) {
		a, b = b, a
	}
	for i := range a.words {
		if a.words[i] != b.words[i] {
			return false
		}
	}
	for i := len(a.words); i < len(b.words); i++ {
		if b.words[i] != 0 {
			return false
		}
	}
	return true
}

// Intersects reports whether any bit position is set in both a and b.
func Intersects(a, b *BitSet) bool {
	n := len(a.words)
	if len(b.words) < n {
		n = len(b.words)
	}
	for i := 0; i < n; i++ {
		if a.words[i]&b.words[i] != 0 {
			return true
		}
	}
	return false
}

// Empty reports whether all bits are zero.
func (b *BitSet) Empty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the population count (number of set bits).
func (b *BitSet) Count() int {
	count := 0
	for _, w := range b.words {
		for w != 0 {
			count += int(w & 1)
			w >>= 1
		}
	}
	return count
}

func maxInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func wordAt(words []uint64, i int) uint64 {
	if i >= len(words) {
		return 0
	}
	return words[i]
}

// Op2 computes dst[i] = op(a[i], b[i]) for every word and trims trailing
// zero words from dst. Returns whether dst changed.
func Op2(dst, a, b *BitSet, op func(x, y uint64) uint64) bool {
	length := maxInt(len(a.words), len(b.words))
	dst.expand(length * wordBits)
	changed := false
	bound := 0
	for i := 0; i < length; i++ {
		old := dst.words[i]
		nv := op(wordAt(a.words, i), wordAt(b.words, i))
		dst.words[i] = nv
		if nv != 0 {
			bound = i + 1
		}
		if old != nv {
			changed = true
		}
	}
	for i := length; i < len(dst.words); i++ {
		if dst.words[i] != 0 {
			changed = true
		}
	}
	dst.words = dst.words[:bound]
	return changed
}

// Op3 computes dst[i] = op(a[i], b[i], c[i]) for every word, trimming
// trailing zero words. Returns whether dst changed.
func Op3(dst, a, b, c *BitSet, op func(x, y, z uint64) uint64) bool {
	length := maxInt(len(a.words), len(b.words), len(c.words))
	dst.expand(length * wordBits)
	changed := false
	bound := 0
	for i := 0; i < length; i++ {
		old := dst.words[i]
		nv := op(wordAt(a.words, i), wordAt(b.words, i), wordAt(c.words, i))
		dst.words[i] = nv
		if nv != 0 {
			bound = i + 1
		}
		if old != nv {
			changed = true
		}
	}
	for i := length; i < len(dst.words); i++ {
		if dst.words[i] != 0 {
			changed = true
		}
	}
	dst.words = dst.words[:bound]
	return changed
}

func and(x, y uint64) uint64     { return x & y }
func andNot(x, y uint64) uint64  { return x &^ y }
func or(x, y uint64) uint64      { return x | y }
func orAnd(x, y, z uint64) uint64     { return x | (y & z) }
func orAndNot(x, y, z uint64) uint64  { return x | (y &^ z) }

// And computes dst = src1 & src2.
func And(dst, src1, src2 *BitSet) bool { return Op2(dst, src1, src2, and) }

// AndNot computes dst = src1 & ~src2.
func AndNot(dst, src1, src2 *BitSet) bool { return Op2(dst, src1, src2, andNot) }

// Or computes dst = src1 | src2.
func Or(dst, src1, src2 *BitSet) bool { return Op2(dst, src1, src2, or) }

// OrAnd computes dst = src1 | (src2 & src3).
func OrAnd(dst, src1, src2, src3 *BitSet) bool { return Op3(dst, src1, src2, src3, orAnd) }

// OrAndNot computes dst = src1 | (src2 & ~src3).
func OrAndNot(dst, src1, src2, src3 *BitSet) bool { return Op3(dst, src1, src2, src3, orAndNot) }

// Iterator yields ascending set bit positions, skipping zero words.
type Iterator struct {
	b    *BitSet
	nbit int
}

// Iterate returns a fresh iterator positioned before the first bit.
func (b *BitSet) Iterate() *Iterator {
	return &Iterator{b: b, nbit: 0}
}

// Next advances the iterator and reports the next set bit position, if any.
func (it *Iterator) Next() (int, bool) {
	words := it.b.words
	curWord := it.nbit / wordBits
	for curWord < len(words) {
		w := words[curWord]
		if w != 0 {
			w >>= uint(it.nbit % wordBits)
			for w != 0 {
				if w&1 != 0 {
					pos := it.nbit
					it.nbit++
					return pos, true
				}
				w >>= 1
				it.nbit++
			}
		}
		// No set bits remain in this word: move on to the next one.
		it.nbit = (curWord + 1) * wordBits
		curWord = it.nbit / wordBits
	}
	return 0, false
}
