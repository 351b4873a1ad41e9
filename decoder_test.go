package huffman

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestDecoder(t *testing.T) Decoder {
	var d Decoder
	err := d.Load(bitio.NewReader(bytes.NewReader([]byte{0x00, 0x05, 0x1a, 0xb9, 0x1e, 0x02, 0x80})))
	require.NoError(t, err)
	return d
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder(t)

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tHeader() = {5, 0, 6}\n",
		"\tDecode(\"0\") = 5\n",
		"\tDecode(\"100\") = 2\n",
		"\tDecode(\"101\") = 3\n",
		"\tDecode(\"1100\") = 0\n",
		"\tDecode(\"1101\") = 1\n",
		"\tDecode(\"111\") = 4\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder(t)

	r := bitio.NewReader(bytes.NewReader([]byte{0x67, 0x97, 0x40}))
	for _, expect := range []Symbol{5, 0, 4, 2, 3, 1} {
		sym, err := d.Decode(r)
		require.NoError(t, err)
		assert.Equal(t, expect, sym)
	}
}

func TestDecoder_DecodeEOF(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Init(6, []uint64{5, 0, 0, 2, 0, 3}))

	var d Decoder
	d.InitTree(e.Tree())

	// Eight 1-bit codes for symbol 0 fill exactly one byte.
	r := bitio.NewReader(bytes.NewReader([]byte{0xff}))
	for i := 0; i < 8; i++ {
		sym, err := d.Decode(r)
		require.NoError(t, err)
		assert.Equal(t, Symbol(0), sym)
	}

	sym, err := d.Decode(r)
	assert.Equal(t, InvalidSymbol, sym)
	assert.Equal(t, io.EOF, err)
}

func TestDecoder_DecodeUnexpectedEOF(t *testing.T) {
	d := makeTestDecoder(t)

	// "0" "111" "111" and then a lone "1".
	r := bitio.NewReader(bytes.NewReader([]byte{0x7f}))
	for _, expect := range []Symbol{5, 4, 4} {
		sym, err := d.Decode(r)
		require.NoError(t, err)
		assert.Equal(t, expect, sym)
	}

	sym, err := d.Decode(r)
	assert.Equal(t, InvalidSymbol, sym)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)
}

func TestDecoder_SingleSymbol(t *testing.T) {
	var d Decoder
	require.NoError(t, d.Load(bitio.NewReader(bytes.NewReader([]byte{0x00, 0x02, 0x90}))))
	assert.Equal(t, Header{MaxSymbol: 2, MinSymbol: 2, UsedSymbols: 1}, d.Tree().Header())

	// The only symbol has an empty code, so no bits are needed.
	r := bitio.NewReader(bytes.NewReader(nil))
	for i := 0; i < 3; i++ {
		sym, err := d.Decode(r)
		require.NoError(t, err)
		assert.Equal(t, Symbol(2), sym)
	}
}

func TestDecoder_SymbolZeroIsNotEOF(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Init(2, []uint64{1, 1}))

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	require.NoError(t, e.Store(w))
	for i := 0; i < 3; i++ {
		require.NoError(t, e.Encode(w, 0))
	}
	require.NoError(t, w.Close())

	var d Decoder
	r := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, d.Load(r))
	for i := 0; i < 3; i++ {
		sym, err := d.Decode(r)
		require.NoError(t, err)
		assert.Equal(t, Symbol(0), sym)
	}
}

func TestDecoder_NoTree(t *testing.T) {
	var d Decoder

	sym, err := d.Decode(bitio.NewReader(bytes.NewReader([]byte{0xff})))
	assert.Equal(t, InvalidSymbol, sym)
	assert.True(t, errors.Is(err, ErrNoTree))

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	assert.Equal(t, "Decoder{\n}\n", buf.String())
}

func TestDecoder_LoadReplacesTree(t *testing.T) {
	d := makeTestDecoder(t)

	err := d.Load(bitio.NewReader(bytes.NewReader(nil)))
	assert.Equal(t, io.EOF, err)
	assert.Nil(t, d.Tree())

	require.NoError(t, d.Load(bitio.NewReader(bytes.NewReader([]byte{0x00, 0x05, 0x0f, 0x35, 0x00}))))
	assert.Equal(t, uint32(3), d.Tree().NumLeaves())
}
