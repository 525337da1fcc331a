package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enc "github.com/rentcredit/rentcredit/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := enc.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestNewUTF8Reader_PlainUTF8(t *testing.T) {
	got := decode(t, []byte("name,rent\nPriya Sharma,15000"))
	assert.Equal(t, "name,rent\nPriya Sharma,15000", got)
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name,rent")...)
	assert.Equal(t, "name,rent", decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	input := []byte{0xFF, 0xFE}
	for _, r := range "name" {
		input = append(input, byte(r), 0x00)
	}

	assert.Equal(t, "name", decode(t, input))
}

func TestNewUTF8Reader_Windows1252Fallback(t *testing.T) {
	// 0xE9 is é in Windows-1252 and invalid as standalone UTF-8.
	input := []byte{'R', 0xE9, 'n', 0xE9}
	assert.Equal(t, "Réné", decode(t, input))
}
