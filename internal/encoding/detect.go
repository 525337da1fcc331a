package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// peekSize covers BOM detection plus enough sample for charset heuristics.
const peekSize = 4096

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

var utf16BOMs = map[string]encoding.Encoding{
	"\xFF\xFE": unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"\xFE\xFF": unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
}

// NewUTF8Reader wraps r so that its content reads as UTF-8 regardless of the
// source encoding. Spreadsheet exports arrive in whatever encoding the
// landlord's tooling produced, so detection is best-effort: BOM first, then a
// UTF-8 validity check, then a chardet heuristic, with Windows-1252 as the
// final fallback.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.HasPrefix(buf, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	for bom, enc := range utf16BOMs {
		if bytes.HasPrefix(buf, []byte(bom)) {
			return transform.NewReader(br, enc.NewDecoder()), nil
		}
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		if enc := charsetEncoding(result.Charset); enc != nil {
			return transform.NewReader(br, enc.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

// charsetEncoding maps the chardet charsets we expect from spreadsheet tools
// to their decoders. Unknown charsets return nil and fall through to the
// Windows-1252 fallback.
func charsetEncoding(name string) encoding.Encoding {
	switch name {
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252
	case "ISO-8859-15":
		return charmap.ISO8859_15
	default:
		return nil
	}
}
