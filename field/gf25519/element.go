package gf25519

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-gfptv/field"
	"github.com/holiman/uint256"
)

var _ field.Element[Element] = Element{}

// A24 is (A + 2) / 4 for the Montgomery coefficient A = 486662 of Curve25519.
const A24 uint32 = 121666

// ErrNotInvertible is returned when inverting an element congruent to zero.
var ErrNotInvertible = errors.New("element is not invertible")

// modulus p = 2²⁵⁵ - 19, as little-endian 64-bit limbs.
var modulus = uint256.Int{0xFFFFFFFFFFFFFFED, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0x7FFFFFFFFFFFFFFF}

// half is the inverse of 2 modulo p, i.e. 2^(p-2) mod p.
var half = mustInverse(NewElement(2))

// Element is an unsigned 256-bit integer interpreted modulo p.  An element
// constructed from raw data may hold any value in [0, 2²⁵⁶); every arithmetic
// operation accepts such values and returns the canonical representative in
// [0, p).
type Element struct {
	value uint256.Int
}

// Modulus returns p.
func Modulus() Element {
	return Element{modulus}
}

// Zero returns 0.
func Zero() Element {
	return Element{}
}

// One returns 1.
func One() Element {
	return NewElement(1)
}

// NewElement constructs an element holding a small value.
func NewElement(v uint64) Element {
	return Element{uint256.Int{v, 0, 0, 0}}
}

// FromInt constructs an element holding the given (possibly unreduced) value.
func FromInt(v *uint256.Int) Element {
	return Element{*v}
}

// FromBytes constructs an element from 32 big-endian bytes.  The value is not
// reduced.
func FromBytes(b [32]byte) Element {
	var e Element
	//
	e.value.SetBytes32(b[:])
	//
	return e
}

// FromBig constructs an element from a non-negative big integer of at most
// 256 bits.  The value is not reduced.
func FromBig(b *big.Int) (Element, error) {
	if b.Sign() < 0 {
		return Element{}, fmt.Errorf("negative value %s", b)
	}
	//
	v, overflow := uint256.FromBig(b)
	if overflow {
		return Element{}, fmt.Errorf("value %s exceeds 256 bits", b.Text(16))
	}
	//
	return Element{*v}, nil
}

// Int returns the raw 256-bit value of x.
func (x Element) Int() uint256.Int {
	return x.value
}

// Big returns the raw value of x as a big integer.
func (x Element) Big() *big.Int {
	return x.value.ToBig()
}

// Bytes returns the raw value of x as 32 big-endian bytes.
func (x Element) Bytes() [32]byte {
	return x.value.Bytes32()
}

// IsReduced determines whether x already lies in [0, p).
func (x Element) IsReduced() bool {
	return x.value.Lt(&modulus)
}

// IsZero determines whether x is congruent to zero.
func (x Element) IsZero() bool {
	r := x.Reduce()
	//
	return r.value.IsZero()
}

// Reduce x mod p
func (x Element) Reduce() Element {
	var r Element
	//
	r.value.Mod(&x.value, &modulus)
	//
	return r
}

// Add x + y
func (x Element) Add(y Element) Element {
	var r Element
	//
	r.value.AddMod(&x.value, &y.value, &modulus)
	//
	return r
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var (
		a = x.Reduce()
		b = y.Reduce()
	)
	// a - b wraps modulo 2²⁵⁶ when a < b; adding p wraps it back into [0, p).
	borrow := a.value.Lt(&b.value)
	a.value.Sub(&a.value, &b.value)
	//
	if borrow {
		a.value.Add(&a.value, &modulus)
	}
	//
	return a
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var r Element
	//
	r.value.MulMod(&x.value, &y.value, &modulus)
	//
	return r
}

// MulUint32 x * y
func (x Element) MulUint32(y uint32) Element {
	return x.Mul(NewElement(uint64(y)))
}

// Square x * x
func (x Element) Square() Element {
	return x.Mul(x)
}

// Double 2x
func (x Element) Double() Element {
	return x.Add(x)
}

// Half x/2, computed as x * 2⁻¹.
func (x Element) Half() Element {
	return x.Mul(half)
}

// Neg -x
func (x Element) Neg() Element {
	r := x.Reduce()
	//
	if r.value.IsZero() {
		return r
	}
	//
	r.value.Sub(&modulus, &r.value)
	//
	return r
}

// CondNeg returns -x when negate holds, and x reduced otherwise.
func (x Element) CondNeg(negate bool) Element {
	if negate {
		return x.Neg()
	}
	//
	return x.Reduce()
}

// Exp x^e, by left-to-right square-and-multiply.
func (x Element) Exp(e uint256.Int) Element {
	var (
		base = x.Reduce()
		res  = One()
	)
	//
	for i := e.BitLen() - 1; i >= 0; i-- {
		res = res.Square()
		//
		if (e[i/64]>>(uint(i)%64))&1 == 1 {
			res = res.Mul(base)
		}
	}
	//
	return res
}

// Inverse x⁻¹ = x^(p-2), since p is prime.  Returns ErrNotInvertible when x is
// congruent to zero.
func (x Element) Inverse() (Element, error) {
	if x.IsZero() {
		return Element{}, ErrNotInvertible
	}
	//
	var exponent uint256.Int
	//
	exponent.Sub(&modulus, uint256.NewInt(2))
	//
	return x.Exp(exponent), nil
}

// Cmp compares the raw values of x and y, returning 1 if x > y, 0 if x = y, and
// -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.value.Cmp(&y.value)
}

// Equal determines whether x and y are congruent modulo p.
func (x Element) Equal(y Element) bool {
	var (
		a = x.Reduce()
		b = y.Reduce()
	)
	//
	return a.value.Eq(&b.value)
}

// Text returns the raw value of x in the given base.
func (x Element) Text(base int) string {
	return x.value.ToBig().Text(base)
}

func (x Element) String() string {
	return x.value.Hex()
}

// HalfElement returns the inverse of 2 modulo p.
func HalfElement() Element {
	return half
}

// CheckParameters verifies the field constants this package relies upon: the
// modulus is odd and 2 * 2⁻¹ ≡ 1 (mod p).
func CheckParameters() error {
	if modulus[0]&1 == 0 {
		return fmt.Errorf("modulus %s is even", modulus.Hex())
	} else if !half.IsReduced() {
		return fmt.Errorf("inverse of 2 (%s) is not reduced", half)
	} else if !half.Double().Equal(One()) {
		return fmt.Errorf("inverse of 2 (%s) does not satisfy 2x = 1", half)
	}
	//
	return nil
}

func mustInverse(x Element) Element {
	inv, err := x.Inverse()
	if err != nil {
		panic(fmt.Sprintf("%s: %v", x, err))
	}
	//
	return inv
}
