package formulagraph

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, ScanRegex, opts.Scan)
	assert.Equal(t, "Sheet1", opts.SheetName())
	assert.NotNil(t, opts.Log())

	opts.Sheet = "Budget"
	assert.Equal(t, "Budget", opts.SheetName())
}

func TestOptionsScanFunc(t *testing.T) {
	formula := `=A1&"B1"`

	regex := slices.Collect(Options{}.ScanFunc()(formula))
	assert.Len(t, regex, 2)

	tokens := slices.Collect(Options{Scan: ScanTokens}.ScanFunc()(formula))
	assert.Len(t, tokens, 1)
}

func TestParseScanMode(t *testing.T) {
	for _, in := range []string{"regex", "tokens"} {
		m, err := ParseScanMode(in)
		require.NoError(t, err)
		assert.Equal(t, ScanMode(in), m)
	}

	_, err := ParseScanMode("fast")
	assert.Error(t, err)
}
