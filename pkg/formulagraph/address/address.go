// Package address converts between A1 cell addresses and 1-based row/column
// coordinates.
//
// Absolute markers ($) are accepted and ignored: $B$2 and B2 name the same
// cell. Column letters are valid through ZZZ (18278), which is wider than the
// xlsx XFD limit.
package address

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxColumn is the largest column number representable with three letters (ZZZ).
const MaxColumn = 18278

// MaxRangeCells caps the number of cells ExpandRange will produce. A full
// xlsx column (1048576 rows) fits.
const MaxRangeCells = 1 << 20

// ErrMalformedAddress indicates a string is not a valid A1 address.
var ErrMalformedAddress = errors.New("malformed address")

// AddressError reports the address that failed to parse.
type AddressError struct {
	Address string
	Reason  string
}

func (e *AddressError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %q", ErrMalformedAddress, e.Address)
	}
	return fmt.Sprintf("%v: %q (%s)", ErrMalformedAddress, e.Address, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedAddress) match any AddressError.
func (e *AddressError) Is(target error) bool {
	return target == ErrMalformedAddress
}

func malformed(addr, reason string) error {
	return &AddressError{Address: addr, Reason: reason}
}

var a1Pattern = regexp.MustCompile(`^([A-Z]{1,3})([0-9]+)$`)

// Coord is a 1-based cell position.
type Coord struct {
	Row int
	Col int
}

// StripAbsolute removes absolute-reference markers from an address.
func StripAbsolute(addr string) string {
	return strings.ReplaceAll(addr, "$", "")
}

// ColumnLetterToNumber converts column letters to a 1-based column number
// (A=1, Z=26, AA=27).
func ColumnLetterToNumber(letters string) (int, error) {
	if letters == "" || len(letters) > 3 {
		return 0, malformed(letters, "column must be 1 to 3 letters")
	}
	n := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c < 'A' || c > 'Z' {
			return 0, malformed(letters, "column must be uppercase A-Z")
		}
		n = n*26 + int(c-'A'+1)
	}
	return n, nil
}

// NumberToColumnLetter is the inverse of ColumnLetterToNumber.
func NumberToColumnLetter(n int) (string, error) {
	if n < 1 || n > MaxColumn {
		return "", malformed(strconv.Itoa(n), fmt.Sprintf("column number out of range [1, %d]", MaxColumn))
	}
	var buf [3]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:]), nil
}

// ParseA1 parses an address such as "B4" or "$B$4".
func ParseA1(addr string) (Coord, error) {
	m := a1Pattern.FindStringSubmatch(StripAbsolute(addr))
	if m == nil {
		return Coord{}, malformed(addr, "")
	}
	col, err := ColumnLetterToNumber(m[1])
	if err != nil {
		return Coord{}, malformed(addr, "")
	}
	row, err := strconv.Atoi(m[2])
	if err != nil {
		return Coord{}, malformed(addr, "row out of range")
	}
	if row < 1 {
		return Coord{}, malformed(addr, "row must be >= 1")
	}
	return Coord{Row: row, Col: col}, nil
}

// FormatA1 renders a 1-based row and column as an A1 address.
func FormatA1(row, col int) (string, error) {
	if row < 1 {
		return "", malformed(fmt.Sprintf("R%dC%d", row, col), "row must be >= 1")
	}
	letters, err := NumberToColumnLetter(col)
	if err != nil {
		return "", malformed(fmt.Sprintf("R%dC%d", row, col), fmt.Sprintf("column out of range [1, %d]", MaxColumn))
	}
	return letters + strconv.Itoa(row), nil
}

// String renders the coordinate in A1 notation. Invalid coordinates render
// as an empty string.
func (c Coord) String() string {
	s, _ := FormatA1(c.Row, c.Col)
	return s
}

// ExpandRange returns every address in the inclusive rectangle spanned by two
// corners, in row-major order. Corner order does not matter. Ranges larger
// than MaxRangeCells fail with ErrMalformedAddress.
func ExpandRange(start, end string) ([]string, error) {
	a, err := ParseA1(start)
	if err != nil {
		return nil, err
	}
	b, err := ParseA1(end)
	if err != nil {
		return nil, err
	}

	r1, r2 := min(a.Row, b.Row), max(a.Row, b.Row)
	c1, c2 := min(a.Col, b.Col), max(a.Col, b.Col)

	// r1 and c1 are >= 1, so neither span overflows; cols <= MaxColumn.
	rows, cols := r2-r1+1, c2-c1+1
	if rows > MaxRangeCells/cols {
		return nil, malformed(start+":"+end, fmt.Sprintf("range exceeds %d cells", MaxRangeCells))
	}

	out := make([]string, 0, rows*cols)
	for r := r1; r <= r2; r++ {
		for c := c1; c <= c2; c++ {
			out = append(out, Coord{Row: r, Col: c}.String())
		}
	}
	return out, nil
}

// FormatSpan renders a frame span: "A1" when both ends are equal, "A1:D1"
// otherwise.
func FormatSpan(start, end string) string {
	if start == end {
		return start
	}
	return start + ":" + end
}
