package gf256

import (
	"errors"

	"github.com/f3rmion/sss/field"
)

// Element is a member of GF(2^8).
type Element struct {
	v byte
}

// Add sets e to a + b and returns e.
func (e *Element) Add(a, b field.Element) field.Element {
	e.v = a.(*Element).v ^ b.(*Element).v
	return e
}

// Sub sets e to a - b and returns e. In characteristic 2 this equals Add.
func (e *Element) Sub(a, b field.Element) field.Element {
	e.v = a.(*Element).v ^ b.(*Element).v
	return e
}

// Mul sets e to a * b and returns e.
func (e *Element) Mul(a, b field.Element) field.Element {
	e.v = Mul(a.(*Element).v, b.(*Element).v)
	return e
}

// Invert sets e to a^(-1) and returns e.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (e *Element) Invert(a field.Element) (field.Element, error) {
	x := a.(*Element).v
	if x == 0 {
		return nil, errors.New("cannot invert zero element")
	}
	e.v = expTable[255-int(logTable[x])]
	return e, nil
}

// Set copies the value of a into e and returns e.
func (e *Element) Set(a field.Element) field.Element {
	e.v = a.(*Element).v
	return e
}

// SetUint64 sets e to the byte v and returns e. Only the low 8 bits are used.
func (e *Element) SetUint64(v uint64) field.Element {
	e.v = byte(v)
	return e
}

// Uint64 returns the byte value of e.
func (e *Element) Uint64() uint64 {
	return uint64(e.v)
}

// Equal reports whether e and b are the same element.
func (e *Element) Equal(b field.Element) bool {
	return e.v == b.(*Element).v
}

// IsZero reports whether e is zero.
func (e *Element) IsZero() bool {
	return e.v == 0
}

// GF256 implements [field.Field] for GF(2^8).
//
// GF256 is a zero-sized type. Create an instance with &GF256{} or new(GF256).
type GF256 struct{}

// NewElement returns a new zero element.
func (f *GF256) NewElement() field.Element {
	return &Element{}
}

// Order returns 256.
func (f *GF256) Order() uint64 {
	return 256
}

// Name returns "gf256".
func (f *GF256) Name() string {
	return "gf256"
}

// Mul multiplies two bytes in GF(2^8).
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(int(logTable[a])+int(logTable[b]))%255]
}

var (
	logTable [256]byte
	expTable [256]byte
)

func init() {
	var x byte = 1
	for i := 0; i < 255; i++ {
		expTable[i] = x
		logTable[x] = byte(i)
		x = mulSlow(x, 0x03)
	}
	expTable[255] = expTable[0]
}

// mulSlow is carry-less multiplication reduced by 0x11B. It is only used to
// build the tables.
func mulSlow(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1B
		}
		b >>= 1
	}
	return p
}
