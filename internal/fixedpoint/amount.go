// Package fixedpoint implements the scaled-integer arithmetic shared by the
// schedule simulator and the ledger it previews.
//
// All quantities that take part in minting math are integers multiplied by a
// Scale (E8S by default). Amount values are immutable: every operation
// allocates a fresh result, so values can be shared between previews.
package fixedpoint

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Scale is the number of smallest units in one whole token.
type Scale int64

// E8S is the ledger's scale: 1 token = 100_000_000 smallest units.
const E8S Scale = 100_000_000

// Digits returns the number of decimal digits represented by the scale.
// Scales that are not a power of ten report the digits of the nearest
// lower power.
func (s Scale) Digits() int32 {
	var d int32
	for v := int64(s); v >= 10; v /= 10 {
		d++
	}
	return d
}

func (s Scale) isPow10() bool {
	if s <= 0 {
		return false
	}
	v := int64(s)
	for v%10 == 0 {
		v /= 10
	}
	return v == 1
}

// Unit returns one whole token at this scale.
func (s Scale) Unit() Amount {
	return FromInt64(int64(s))
}

// Amount is a non-mutating wrapper around a big.Int.
// The zero value is a valid zero amount.
type Amount struct {
	v *big.Int
}

var bigZero = new(big.Int)

// Zero returns a zero amount.
func Zero() Amount { return Amount{} }

// One returns the smallest representable unit.
func One() Amount { return FromInt64(1) }

// FromInt64 builds an amount from a raw scaled integer.
func FromInt64(v int64) Amount {
	return Amount{v: big.NewInt(v)}
}

// FromBigInt copies v into a new amount. A nil v yields zero.
func FromBigInt(v *big.Int) Amount {
	if v == nil {
		return Amount{}
	}
	return Amount{v: new(big.Int).Set(v)}
}

// FromUnits builds an amount from a whole-token count.
func FromUnits(units int64, scale Scale) Amount {
	return Amount{v: new(big.Int).Mul(big.NewInt(units), big.NewInt(int64(scale)))}
}

// Parse reads a base-10 scaled integer. ok is false on malformed input.
func Parse(s string) (Amount, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, false
	}
	return Amount{v: v}, true
}

func (a Amount) big() *big.Int {
	if a.v == nil {
		return bigZero
	}
	return a.v
}

// BigInt returns a copy of the underlying integer.
func (a Amount) BigInt() *big.Int {
	return new(big.Int).Set(a.big())
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{v: new(big.Int).Add(a.big(), b.big())}
}

// Sub returns a - b. The result may be negative.
func (a Amount) Sub(b Amount) Amount {
	return Amount{v: new(big.Int).Sub(a.big(), b.big())}
}

// Mul returns a * b.
func (a Amount) Mul(b Amount) Amount {
	return Amount{v: new(big.Int).Mul(a.big(), b.big())}
}

// MulInt64 returns a * n.
func (a Amount) MulInt64(n int64) Amount {
	return Amount{v: new(big.Int).Mul(a.big(), big.NewInt(n))}
}

// Quo returns a / b truncated toward zero. Division by zero returns zero.
func (a Amount) Quo(b Amount) Amount {
	if b.Sign() == 0 {
		return Amount{}
	}
	return Amount{v: new(big.Int).Quo(a.big(), b.big())}
}

// QuoInt64 returns a / n truncated toward zero. Division by zero returns zero.
func (a Amount) QuoInt64(n int64) Amount {
	if n == 0 {
		return Amount{}
	}
	return Amount{v: new(big.Int).Quo(a.big(), big.NewInt(n))}
}

// MulQuo returns a * b / c. The product is formed first and then divided
// once, matching the ledger's evaluation order.
func MulQuo(a, b, c Amount) Amount {
	return a.Mul(b).Quo(c)
}

// Double returns 2a.
func (a Amount) Double() Amount {
	return Amount{v: new(big.Int).Lsh(a.big(), 1)}
}

// Cmp compares a and b: -1 if a < b, 0 if equal, +1 if a > b.
func (a Amount) Cmp(b Amount) int {
	return a.big().Cmp(b.big())
}

// Sign returns -1, 0 or +1.
func (a Amount) Sign() int {
	return a.big().Sign()
}

// IsZero reports whether a == 0.
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

// Equal reports whether a == b.
func (a Amount) Equal(b Amount) bool {
	return a.Cmp(b) == 0
}

// Min returns the smaller of a and b.
func Min(a, b Amount) Amount {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Amount) Amount {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// String returns the raw scaled integer in base 10.
func (a Amount) String() string {
	return a.big().String()
}

// Decimal converts the scaled integer to whole-token units.
func (a Amount) Decimal(scale Scale) decimal.Decimal {
	if scale.isPow10() {
		return decimal.NewFromBigInt(a.big(), -scale.Digits())
	}
	return decimal.NewFromBigInt(a.big(), 0).Div(decimal.NewFromInt(int64(scale)))
}

// Float64 converts to whole-token units for presentation only.
func (a Amount) Float64(scale Scale) float64 {
	f, _ := a.Decimal(scale).Float64()
	return f
}

// FromDecimal scales a whole-token decimal into an amount, truncating digits
// below the scale.
func FromDecimal(d decimal.Decimal, scale Scale) Amount {
	return Amount{v: d.Mul(decimal.NewFromInt(int64(scale))).BigInt()}
}

// MarshalText encodes the raw scaled integer.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes a raw scaled integer.
func (a *Amount) UnmarshalText(text []byte) error {
	v, ok := Parse(string(text))
	if !ok {
		return &ParseError{Input: string(text)}
	}
	*a = v
	return nil
}

// UnmarshalJSON accepts a quoted or bare base-10 integer.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return a.UnmarshalText([]byte(s))
}

// ParseError is returned when a scaled integer cannot be decoded.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return "fixedpoint: invalid scaled integer " + `"` + e.Input + `"`
}
