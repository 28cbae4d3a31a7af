package assert

import (
	"math/big"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.  Big integers are compared by
// value.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || bigEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// Congruent errors unless actual ≡ expected (mod m), and additionally requires
// actual to be the canonical representative in [0, m).
func Congruent(t *testing.T, m, expected, actual *big.Int, msg ...any) {
	t.Helper()
	//
	Reduced(t, m, actual, msg...)
	//
	var e big.Int
	//
	e.Mod(expected, m)
	//
	if e.Cmp(actual) != 0 {
		t.Errorf("expected: 0x%s (mod 0x%s), actual: 0x%s", e.Text(16), m.Text(16), actual.Text(16))

		if len(msg) != 0 {
			t.Errorf(msg[0].(string), msg[1:]...)
		}

		t.FailNow()
	}
}

// Reduced errors unless 0 <= actual < m.
func Reduced(t *testing.T, m, actual *big.Int, msg ...any) {
	t.Helper()
	//
	if actual.Sign() >= 0 && actual.Cmp(m) < 0 {
		return
	}

	t.Errorf("0x%s is not reduced modulo 0x%s", actual.Text(16), m.Text(16))

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// bigEqual returns whether expected and actual are both big integers (or
// pointers to them) holding the same value.
func bigEqual(expected, actual any) bool {
	a, aBig := asBig(expected)
	b, bBig := asBig(actual)

	if !aBig || !bBig {
		return false
	}

	return a.Cmp(b) == 0
}

func asBig(x any) (*big.Int, bool) {
	switch x := x.(type) {
	case *big.Int:
		return x, x != nil
	case big.Int:
		return &x, true
	}

	return nil, false
}
