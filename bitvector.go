package bitexpr

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var zero = big.NewInt(0)
var one = big.NewInt(1)

// BitVector is an immutable fixed-length sequence of bits. Element 0 is the
// leftmost character of its textual form and the most significant bit of the
// underlying integer. Every operation returns a fresh BitVector. The zero
// value is the empty vector.
type BitVector struct {
	size  uint
	mask  *big.Int
	value *big.Int
}

func makeMask(size uint) *big.Int {
	v := big.NewInt(0)
	v.Lsh(one, size)
	return v.Sub(v, one)
}

func fromValue(value *big.Int, size uint) *BitVector {
	return &BitVector{size: size, mask: makeMask(size), value: value}
}

// bits and bitmask never return nil, so the zero value behaves as an empty
// vector. The returned integers must not be modified.
func (bv *BitVector) bits() *big.Int {
	if bv.value == nil {
		return zero
	}
	return bv.value
}

func (bv *BitVector) bitmask() *big.Int {
	if bv.mask == nil {
		return makeMask(bv.size)
	}
	return bv.mask
}

// New builds a BitVector from src. A nil src yields an empty vector.
func New(src Source) (*BitVector, error) {
	if src == nil {
		return fromValue(big.NewInt(0), 0), nil
	}
	elems, err := src.elements()
	if err != nil {
		return nil, err
	}

	size := uint(len(elems))
	v := big.NewInt(0)
	for i, e := range elems {
		if e {
			v.SetBit(v, int(size)-1-i, 1)
		}
	}
	return fromValue(v, size), nil
}

// FromValue builds a BitVector from a string, a []bool, a []int, a []any
// holding only bools or only ints, a Source or nil.
func FromValue(v any) (*BitVector, error) {
	src, err := sourceOf(v)
	if err != nil {
		return nil, err
	}
	return New(src)
}

// Parse builds a BitVector from a string of '0' and '1'.
func Parse(s string) (*BitVector, error) {
	return New(Literal(s))
}

func MustParse(s string) *BitVector {
	bv, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return bv
}

func (bv *BitVector) Len() int {
	return int(bv.size)
}

func (bv *BitVector) String() string {
	if bv.size == 0 {
		return ""
	}
	s := bv.bits().Text(2)
	return strings.Repeat("0", int(bv.size)-len(s)) + s
}

// At returns the element at index i.
func (bv *BitVector) At(i int) (Bit, error) {
	if i < 0 || i >= int(bv.size) {
		return Bit{}, fmt.Errorf("index %d out of range [0, %d)", i, bv.size)
	}
	return Bit{bv.bits().Bit(int(bv.size)-1-i) == 1}, nil
}

// Bools returns a copy of the elements.
func (bv *BitVector) Bools() []bool {
	v := bv.bits()
	res := make([]bool, bv.size)
	for i := range res {
		res[i] = v.Bit(int(bv.size)-1-i) == 1
	}
	return res
}

func (bv *BitVector) Hash() uint64 {
	h := xxhash.New()
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(bv.size))
	h.Write(raw)
	h.Write(bv.bits().Bytes())
	return h.Sum64()
}

// Equals reports whether other is a BitVector with the same elements. It is
// false for anything that is not a *BitVector or BitVector, nil included.
func (bv *BitVector) Equals(other any) bool {
	var o *BitVector
	switch other := other.(type) {
	case *BitVector:
		o = other
	case BitVector:
		o = &other
	}
	if bv == nil || o == nil {
		return false
	}
	return bv.size == o.size && bv.bits().Cmp(o.bits()) == 0
}

func (bv *BitVector) check(o *BitVector, op string) error {
	if bv == nil || o == nil {
		return fmt.Errorf("%w: %s requires two bit vectors", ErrUnsupportedOperand, op)
	}
	if bv.size != o.size {
		return fmt.Errorf("%w: different sizes %d and %d", ErrLengthMismatch, bv.size, o.size)
	}
	return nil
}

func (bv *BitVector) Not() *BitVector {
	v := big.NewInt(0)
	v.Not(bv.bits())
	v.And(v, bv.bitmask())
	return fromValue(v, bv.size)
}

func (bv *BitVector) And(o *BitVector) (*BitVector, error) {
	if err := bv.check(o, "and"); err != nil {
		return nil, err
	}

	v := big.NewInt(0)
	v.And(bv.bits(), o.bits())
	return fromValue(v, bv.size), nil
}

func (bv *BitVector) Or(o *BitVector) (*BitVector, error) {
	if err := bv.check(o, "or"); err != nil {
		return nil, err
	}

	v := big.NewInt(0)
	v.Or(bv.bits(), o.bits())
	return fromValue(v, bv.size), nil
}

// Implies computes ~bv | o.
func (bv *BitVector) Implies(o *BitVector) (*BitVector, error) {
	if err := bv.check(o, "implies"); err != nil {
		return nil, err
	}
	return bv.Not().Or(o)
}

// Equivalence computes the element-wise biconditional, ~(bv ^ o).
func (bv *BitVector) Equivalence(o *BitVector) (*BitVector, error) {
	if err := bv.check(o, "equivalence"); err != nil {
		return nil, err
	}

	v := big.NewInt(0)
	v.Xor(bv.bits(), o.bits())
	v.Not(v)
	v.And(v, bv.bitmask())
	return fromValue(v, bv.size), nil
}

// Concat returns a new vector holding the elements of bv followed by those of o.
func (bv *BitVector) Concat(o *BitVector) *BitVector {
	if o == nil {
		return fromValue(new(big.Int).Set(bv.bits()), bv.size)
	}
	v := big.NewInt(0)
	v.Lsh(bv.bits(), o.size)
	v.Or(v, o.bits())
	return fromValue(v, bv.size+o.size)
}
