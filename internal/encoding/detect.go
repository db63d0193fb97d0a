// Package encoding normalizes uploaded bank statements to UTF-8. Internet
// banking exports from Brazilian banks are frequently Windows-1252.
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

const sniffLen = 4096

var boms = []struct {
	mark    []byte
	decoder func() *encoding.Decoder
}{
	{[]byte{0xEF, 0xBB, 0xBF}, nil},
	{[]byte{0xFF, 0xFE}, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder},
	{[]byte{0xFE, 0xFF}, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder},
}

// charsets maps chardet results to decoders. UTF-8 is handled before detection.
var charsets = map[string]*charmap.Charmap{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-15":  charmap.ISO8859_15,
	"ISO-8859-9":   charmap.ISO8859_9,
}

// NewUTF8Reader returns a reader that yields r's content as UTF-8.
//
// A UTF-8 BOM is stripped and UTF-16 BOMs select a UTF-16 decoder. Content that
// is already valid UTF-8 passes through untouched; anything else goes through
// chardet, defaulting to Windows-1252.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	buf, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("peek: %w", err)
	}

	for _, bom := range boms {
		if !bytes.HasPrefix(buf, bom.mark) {
			continue
		}

		if bom.decoder == nil {
			_, _ = br.Discard(len(bom.mark))
			return br, nil
		}

		return transform.NewReader(br, bom.decoder()), nil
	}

	if validUTF8(buf, len(buf) == sniffLen) {
		return br, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		if result.Charset == "UTF-8" {
			return br, nil
		}

		if cm, ok := charsets[result.Charset]; ok {
			return transform.NewReader(br, cm.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

// validUTF8 reports whether buf is valid UTF-8. When buf is a truncated window
// of a longer stream, a rune cut at the end is not counted against it.
func validUTF8(buf []byte, truncated bool) bool {
	if !truncated {
		return utf8.Valid(buf)
	}

	for i := 0; i < utf8.UTFMax && i < len(buf); i++ {
		if utf8.Valid(buf[:len(buf)-i]) {
			return true
		}
	}

	return false
}

// ReadString reads all of r and returns it decoded as UTF-8.
func ReadString(r io.Reader) (string, error) {
	utf8r, err := NewUTF8Reader(r)
	if err != nil {
		return "", fmt.Errorf("detect encoding: %w", err)
	}

	b, err := io.ReadAll(utf8r)
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}

	return string(b), nil
}
