package address

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLetterToNumber(t *testing.T) {
	tests := []struct {
		letters  string
		expected int
	}{
		{"A", 1},
		{"Z", 26},
		{"AA", 27},
		{"AZ", 52},
		{"BA", 53},
		{"ZZ", 702},
		{"AAA", 703},
		{"XFD", 16384},
		{"ZZZ", 18278},
	}

	for _, tt := range tests {
		n, err := ColumnLetterToNumber(tt.letters)
		require.NoError(t, err, tt.letters)
		assert.Equal(t, tt.expected, n, tt.letters)
	}
}

func TestColumnLetterToNumberRejects(t *testing.T) {
	for _, in := range []string{"", "a", "AAAA", "A1", "-"} {
		_, err := ColumnLetterToNumber(in)
		assert.ErrorIs(t, err, ErrMalformedAddress, in)
	}
}

func TestColumnRoundTrip(t *testing.T) {
	for c := 1; c <= MaxColumn; c++ {
		letters, err := NumberToColumnLetter(c)
		require.NoError(t, err)
		n, err := ColumnLetterToNumber(letters)
		require.NoError(t, err)
		if n != c {
			t.Fatalf("round trip of %d via %q gave %d", c, letters, n)
		}
	}
}

func TestNumberToColumnLetterOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, MaxColumn + 1} {
		_, err := NumberToColumnLetter(n)
		assert.ErrorIs(t, err, ErrMalformedAddress, n)
	}
}

func TestParseA1(t *testing.T) {
	tests := []struct {
		addr     string
		expected Coord
	}{
		{"A1", Coord{Row: 1, Col: 1}},
		{"B4", Coord{Row: 4, Col: 2}},
		{"$B$4", Coord{Row: 4, Col: 2}},
		{"B$4", Coord{Row: 4, Col: 2}},
		{"AA10", Coord{Row: 10, Col: 27}},
		{"ZZZ1048576", Coord{Row: 1048576, Col: 18278}},
	}

	for _, tt := range tests {
		c, err := ParseA1(tt.addr)
		require.NoError(t, err, tt.addr)
		assert.Equal(t, tt.expected, c, tt.addr)
	}
}

func TestParseA1Malformed(t *testing.T) {
	for _, in := range []string{"", "A", "1", "a1", "AAAA1", "A0", "A-1", "A1B", "Sheet1!A1", "99999999999999999999999A"} {
		_, err := ParseA1(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrMalformedAddress), in)

		var addrErr *AddressError
		require.ErrorAs(t, err, &addrErr)
		assert.Equal(t, in, addrErr.Address)
	}
}

func TestA1RoundTrip(t *testing.T) {
	for row := 1; row <= 200; row += 7 {
		for col := 1; col <= MaxColumn; col += 97 {
			s, err := FormatA1(row, col)
			require.NoError(t, err)
			c, err := ParseA1(s)
			require.NoError(t, err)
			if c.Row != row || c.Col != col {
				t.Fatalf("FormatA1(%d, %d) = %q parsed back as %+v", row, col, s, c)
			}
		}
	}
}

func TestFormatA1Invalid(t *testing.T) {
	tests := []struct {
		row, col int
		addr     string
	}{
		{row: 0, col: 1, addr: "R0C1"},
		{row: 1, col: 0, addr: "R1C0"},
		{row: 3, col: MaxColumn + 1, addr: "R3C18279"},
	}

	for _, tt := range tests {
		_, err := FormatA1(tt.row, tt.col)
		assert.ErrorIs(t, err, ErrMalformedAddress, tt.addr)

		var addrErr *AddressError
		require.ErrorAs(t, err, &addrErr)
		assert.Equal(t, tt.addr, addrErr.Address)
	}
}

func TestExpandRange(t *testing.T) {
	got, err := ExpandRange("A1", "B2")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B1", "A2", "B2"}, got)

	reversed, err := ExpandRange("B2", "A1")
	require.NoError(t, err)
	assert.Equal(t, got, reversed)

	// mixed corners: top-right and bottom-left
	mixed, err := ExpandRange("$B$1", "A2")
	require.NoError(t, err)
	assert.Equal(t, got, mixed)

	single, err := ExpandRange("C3", "C3")
	require.NoError(t, err)
	assert.Equal(t, []string{"C3"}, single)
}

func TestExpandRangeSize(t *testing.T) {
	tests := []struct{ a, b string }{
		{"A1", "A1"},
		{"A1", "D1"},
		{"A1", "A9"},
		{"C7", "AA3"},
		{"Z100", "X90"},
	}

	for _, tt := range tests {
		ca, _ := ParseA1(tt.a)
		cb, _ := ParseA1(tt.b)
		want := (abs(ca.Row-cb.Row) + 1) * (abs(ca.Col-cb.Col) + 1)

		fwd, err := ExpandRange(tt.a, tt.b)
		require.NoError(t, err)
		back, err := ExpandRange(tt.b, tt.a)
		require.NoError(t, err)

		assert.Len(t, fwd, want, "%s:%s", tt.a, tt.b)
		assert.Equal(t, fwd, back, "%s:%s", tt.a, tt.b)
	}
}

func TestExpandRangeMalformed(t *testing.T) {
	_, err := ExpandRange("A1", "A0")
	assert.ErrorIs(t, err, ErrMalformedAddress)
	_, err = ExpandRange("1A", "B2")
	assert.ErrorIs(t, err, ErrMalformedAddress)
}

func TestExpandRangeTooLarge(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		fails bool
	}{
		{name: "row count overflows", start: "A2", end: "ZZZ999999999999999", fails: true},
		{name: "full sheet", start: "A1", end: "XFD1048576", fails: true},
		{name: "two full columns", start: "A1", end: "B1048576", fails: true},
		{name: "one full column", start: "A1", end: "A1048576"},
		{name: "one full row", start: "A1", end: "ZZZ1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := ExpandRange(tt.start, tt.end)
			if !tt.fails {
				require.NoError(t, err)
				assert.NotEmpty(t, cells)
				return
			}
			assert.ErrorIs(t, err, ErrMalformedAddress)
			assert.ErrorContains(t, err, "range exceeds")
			assert.Nil(t, cells)
		})
	}
}

func TestFormatSpan(t *testing.T) {
	assert.Equal(t, "A1", FormatSpan("A1", "A1"))
	assert.Equal(t, "A1:D1", FormatSpan("A1", "D1"))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
