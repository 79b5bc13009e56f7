package bitexpr

import "fmt"

// Source is the initializer of a BitVector. The set of implementations is
// closed: Literal, Bools and Ints. A nil Source builds an empty vector.
type Source interface {
	elements() ([]bool, error)
}

// Literal is a string made of '0' and '1' characters.
type Literal string

// Bools is a sequence of boolean elements.
type Bools []bool

// Ints is a sequence of integers restricted to 0 and 1.
type Ints []int

func (l Literal) elements() ([]bool, error) {
	res := make([]bool, len(l))
	for i := 0; i < len(l); i++ {
		switch l[i] {
		case '0':
		case '1':
			res[i] = true
		default:
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, l[i], i)
		}
	}
	return res, nil
}

func (b Bools) elements() ([]bool, error) {
	res := make([]bool, len(b))
	copy(res, b)
	return res, nil
}

func (n Ints) elements() ([]bool, error) {
	res := make([]bool, len(n))
	for i, v := range n {
		switch v {
		case 0:
		case 1:
			res[i] = true
		default:
			return nil, fmt.Errorf("%w %d at position %d: only 0 and 1 are allowed", ErrInvalidElement, v, i)
		}
	}
	return res, nil
}

// sourceOf maps a dynamically typed initializer onto a Source.
func sourceOf(v any) (Source, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case Source:
		return v, nil
	case string:
		return Literal(v), nil
	case []bool:
		return Bools(v), nil
	case []int:
		return Ints(v), nil
	case []any:
		return sourceOfSlice(v)
	default:
		return nil, fmt.Errorf("%w %T: expected a string, a bool slice or an int slice", ErrUnsupportedType, v)
	}
}

// sourceOfSlice accepts a slice whose elements are all bool or all int.
func sourceOfSlice(items []any) (Source, error) {
	if len(items) == 0 {
		return Bools{}, nil
	}

	switch items[0].(type) {
	case bool:
		res := make(Bools, len(items))
		for i, item := range items {
			b, ok := item.(bool)
			if !ok {
				return nil, fmt.Errorf("%w %v (%T) at position %d: mixed element types", ErrInvalidElement, item, item, i)
			}
			res[i] = b
		}
		return res, nil
	case int:
		res := make(Ints, len(items))
		for i, item := range items {
			n, ok := item.(int)
			if !ok {
				return nil, fmt.Errorf("%w %v (%T) at position %d: mixed element types", ErrInvalidElement, item, item, i)
			}
			res[i] = n
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w %v (%T) at position 0", ErrInvalidElement, items[0], items[0])
	}
}
