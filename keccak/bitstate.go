package keccak

// BitState is the literal representation of a Keccak-p state: a
// 5x5xw array of individual bits, S[x][y][z]. Every step mapping is
// computed bit by bit exactly as FIPS 202 Algorithms 1-5 define it.
// It is slower than LaneState but easier to audit against the
// standard, and is the natural partner for the intermediate-value
// tracer.
type BitState struct {
	p Params
	s [5][5][]uint8 // s[x][y][z], each entry 0 or 1
}

// NewBitState returns a zeroed BitState for the given parameters.
func NewBitState(p Params) *BitState {
	b := &BitState{p: p}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			b.s[x][y] = make([]uint8, p.W)
		}
	}
	return b
}

func (b *BitState) Params() Params { return b.p }

func (b *BitState) Reset() {
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			for z := range b.s[x][y] {
				b.s[x][y][z] = 0
			}
		}
	}
}

func (b *BitState) Clone() Permutation {
	c := &BitState{p: b.p}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			c.s[x][y] = append([]uint8(nil), b.s[x][y]...)
		}
	}
	return c
}

// Bits flattens the state in the canonical order: lane index x+5y,
// then z within the lane — the same order LaneState.Bits uses, so the
// two backends are directly comparable.
func (b *BitState) Bits() []uint8 {
	w := b.p.W
	out := make([]uint8, b.p.B)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			lane := x + 5*y
			copy(out[lane*w:(lane+1)*w], b.s[x][y])
		}
	}
	return out
}

func (b *BitState) SetBits(bits []uint8) {
	w := b.p.W
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			lane := x + 5*y
			copy(b.s[x][y], bits[lane*w:(lane+1)*w])
		}
	}
}

func (b *BitState) XORBits(bits []uint8) {
	w := b.p.W
	n := len(bits)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			lane := x + 5*y
			base := lane * w
			if base >= n {
				continue
			}
			limit := w
			if base+limit > n {
				limit = n - base
			}
			for z := 0; z < limit; z++ {
				b.s[x][y][z] ^= bits[base+z]
			}
		}
	}
}

// theta computes, for every (x,z), the column parity C[x][z] and the
// sheet-mixing term D[x][z], then XORs D into every bit of sheet x.
// New state depends only on old state: C and D are both derived from
// a read-only pass over b.s before any bit of b.s is written.
func (b *BitState) theta() {
	w := b.p.W
	var c [5][]uint8
	for x := 0; x < 5; x++ {
		c[x] = make([]uint8, w)
		for z := 0; z < w; z++ {
			c[x][z] = b.s[x][0][z] ^ b.s[x][1][z] ^ b.s[x][2][z] ^ b.s[x][3][z] ^ b.s[x][4][z]
		}
	}
	var d [5][]uint8
	for x := 0; x < 5; x++ {
		d[x] = make([]uint8, w)
		for z := 0; z < w; z++ {
			d[x][z] = c[(x+4)%5][z] ^ c[(x+1)%5][(z+w-1)%w]
		}
	}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			for z := 0; z < w; z++ {
				b.s[x][y][z] ^= d[x][z]
			}
		}
	}
}

// rho rotates every lane toward higher z by its fixed offset: the bit
// at z moves to (z+offset) mod w.
func (b *BitState) rho() {
	w := b.p.W
	off := rhoOffsetsFor(w)
	var out [5][5][]uint8
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out[x][y] = make([]uint8, w)
			o := off[x][y]
			for z := 0; z < w; z++ {
				out[x][y][(z+o)%w] = b.s[x][y][z]
			}
		}
	}
	b.s = out
}

// pi rearranges lanes without touching bit positions within a lane:
// S'[x][y] = S[(x+3y) mod 5][x].
func (b *BitState) pi() {
	var out [5][5][]uint8
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out[x][y] = b.s[(x+3*y)%5][x]
		}
	}
	b.s = out
}

// chi mixes three lanes of each row; the first two lanes of every row
// are cached before being overwritten.
func (b *BitState) chi() {
	w := b.p.W
	for y := 0; y < 5; y++ {
		var row [5][]uint8
		for x := 0; x < 5; x++ {
			row[x] = append([]uint8(nil), b.s[x][y]...)
		}
		for x := 0; x < 5; x++ {
			for z := 0; z < w; z++ {
				b.s[x][y][z] = row[x][z] ^ ((row[(x+1)%5][z] ^ 1) * row[(x+2)%5][z])
			}
		}
	}
}

// iota XORs the round constant into lane (0,0) only.
func (b *BitState) iota(iR int) {
	w := b.p.W
	rc := roundConstantFor(b.p.L, iR)
	for z := 0; z < w; z++ {
		b.s[0][0][z] ^= uint8(rc>>uint(z)) & 1
	}
}

func (b *BitState) Round(iR int, hook Hook) {
	runRound(b, iR, hook, b.theta, b.rho, b.pi, b.chi, func() { b.iota(iR) })
}

func (b *BitState) Permute(hook Hook) {
	for iR := 0; iR < b.p.NR; iR++ {
		b.Round(iR, hook)
	}
	if hook != nil {
		hook.FinalState(b)
	}
}
