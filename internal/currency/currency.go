// Package currency implements the fixed-point money type used for every
// amount in the engine. Values are a signed count of minor units (cents),
// so arithmetic is plain integer arithmetic and never touches floats.
package currency

import (
	"fmt"
	"strconv"
	"strings"
)

// Currency is an amount of money in minor units. Because it is an integer
// type, the native operators provide exact arithmetic and total ordering;
// division or remainder by zero panics, which is a caller error.
type Currency int64

const (
	// Zero is the zero amount.
	Zero Currency = 0
	// OneCent is a single minor unit.
	OneCent Currency = 1
	// One is a single major unit (one credit).
	One Currency = 100
)

const (
	symbol             = 'ŧ'
	decimalSeparator   = ','
	thousandsSeparator = '.'
	negativeSymbol     = '-'
)

// New packs major and minor units into a Currency. New(1, 50) is 1,50ŧ.
func New(credits, cents int64) Currency {
	return Currency(credits*100 + cents)
}

// Credits returns only the major part, without cents.
func (c Currency) Credits() int64 {
	return int64(c) / 100
}

// Cents returns only the cents part.
func (c Currency) Cents() int64 {
	return int64(c) % 100
}

// RoundCents rounds to the nearest whole credit, with the 50-cent boundary
// rounding away from zero on the positive side.
func (c Currency) RoundCents() Currency {
	cents := c.Cents()
	if cents < 50 {
		return c - Currency(cents)
	}
	return c + Currency(100-cents)
}

// IsNegative reports whether the amount is below zero.
func (c Currency) IsNegative() bool {
	return c < 0
}

// Float64 returns the amount as a float. Lossy; debugging aid only, never
// used in engine arithmetic.
func (c Currency) Float64() float64 {
	return float64(c) / 100
}

// String renders the canonical display form: thousands-grouped credits,
// a comma, two cent digits and the currency glyph, e.g. "1.234,56ŧ".
// Negative amounts get a single leading sign with absolute-valued digits.
func (c Currency) String() string {
	creds := c.Credits()
	cents := c.Cents()
	if creds < 0 {
		creds = -creds
	}
	if cents < 0 {
		cents = -cents
	}

	var b strings.Builder
	if c.IsNegative() {
		b.WriteRune(negativeSymbol)
	}
	b.WriteString(groupThousands(creds))
	b.WriteRune(decimalSeparator)
	fmt.Fprintf(&b, "%02d", cents)
	b.WriteRune(symbol)
	return b.String()
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune(thousandsSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Parse is the inverse of String. It accepts exactly the canonical display
// form produced by String.
func Parse(s string) (Currency, error) {
	orig := s
	s = strings.TrimSuffix(s, string(symbol))
	if s == orig {
		return 0, fmt.Errorf("parse currency %q: missing %c suffix", orig, symbol)
	}
	negative := strings.HasPrefix(s, string(negativeSymbol))
	if negative {
		s = s[1:]
	}
	major, minor, ok := strings.Cut(s, string(decimalSeparator))
	if !ok || len(minor) != 2 {
		return 0, fmt.Errorf("parse currency %q: want two cent digits after %c", orig, decimalSeparator)
	}
	cents, err := strconv.ParseInt(minor, 10, 64)
	if err != nil || cents < 0 || cents > 99 {
		return 0, fmt.Errorf("parse currency %q: bad cents %q", orig, minor)
	}
	major = strings.ReplaceAll(major, string(thousandsSeparator), "")
	credits, err := strconv.ParseInt(major, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse currency %q: bad credits %q", orig, major)
	}
	c := New(credits, cents)
	if negative {
		c = -c
	}
	return c, nil
}
