package field

import "fmt"

// An Element of a prime-order field.  Operands need not be reduced, but every
// result is.
type Element[Operand any] interface {
	Add(y Operand) Operand       // Add x+y
	Sub(y Operand) Operand       // Sub x-y
	Mul(y Operand) Operand       // Mul x*y
	MulUint32(y uint32) Operand  // MulUint32 x*y for a small constant y.
	Square() Operand             // Square x*x
	Double() Operand             // Double 2x
	Half() Operand               // Half x/2
	Neg() Operand                // Neg -x
	CondNeg(negate bool) Operand // CondNeg -x if negate holds, otherwise x.
	Reduce() Operand             // Reduce x into its canonical representative.
	Cmp(y Operand) int           // Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Inverse() (Operand, error)   // Inverse x⁻¹, or an error if x = 0.
	fmt.Stringer
	Text(base int) string // Text returns the numerical value of x in the given base.
}
