package bitexpr

// Bit is a single element of a BitVector.
type Bit struct {
	Value bool
}

func (b Bit) String() string {
	if b.Value {
		return "1"
	}
	return "0"
}

func BitOne() Bit {
	return Bit{true}
}

func BitZero() Bit {
	return Bit{false}
}

func (b Bit) Not() Bit {
	return Bit{!b.Value}
}

func (b Bit) And(o Bit) Bit {
	return Bit{b.Value && o.Value}
}

func (b Bit) Or(o Bit) Bit {
	return Bit{b.Value || o.Value}
}

func (b Bit) Implies(o Bit) Bit {
	return b.Not().Or(o)
}

func (b Bit) Iff(o Bit) Bit {
	return Bit{b.Value == o.Value}
}
