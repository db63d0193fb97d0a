package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/bolao/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "Data;Descrição;Valor\n15/01/2024;PIX recebido de JOÃO;R$ 30,00\n"
	r, err := encoding.NewUTF8Reader(strings.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte("Descrição;Pagador\nPIX;JOÃO\n"))
	require.NoError(t, err)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(latin1))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Descrição;Pagador\nPIX;JOÃO\n", string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Data;Valor\n")...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Data;Valor\n", string(got))
}

func TestNewUTF8Reader_RuneSplitAtWindow(t *testing.T) {
	// "ã" is two bytes; place it across the 4096-byte sniff window.
	input := strings.Repeat("a", 4095) + "ã" + "\n"

	r, err := encoding.NewUTF8Reader(strings.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestReadString(t *testing.T) {
	got, err := encoding.ReadString(strings.NewReader("Valor\nR$ 30,00\n"))
	require.NoError(t, err)
	assert.Equal(t, "Valor\nR$ 30,00\n", got)

	got, err = encoding.ReadString(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
