package huffman

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestEncoder(t *testing.T) Encoder {
	var e Encoder
	err := e.Init(6, []uint64{5, 9, 12, 13, 16, 45})
	require.NoError(t, err)
	return e
}

func TestEncoder(t *testing.T) {
	e := makeTestEncoder(t)

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := e.SizeBySymbol()
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
}

func TestEncoder_SparseAlphabet(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Init(8, []uint64{5, 0, 0, 2, 0, 3}))

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 2\n",
		"\tEncode(0) = \"1\"\n",
		"\tEncode(1) = nil\n",
		"\tEncode(2) = nil\n",
		"\tEncode(3) = \"00\"\n",
		"\tEncode(4) = nil\n",
		"\tEncode(5) = \"01\"\n",
		"\tEncode(6) = nil\n",
		"\tEncode(7) = nil\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	assert.Equal(t, expectDump, buf.String())
	assert.Equal(t, Symbol(7), e.MaxSymbol())
	assert.Equal(t, Header{MaxSymbol: 5, MinSymbol: 0, UsedSymbols: 3}, e.Tree().Header())
}

func TestEncoder_Encode(t *testing.T) {
	e := makeTestEncoder(t)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, symbol := range []Symbol{5, 0, 4, 2, 3, 1} {
		require.NoError(t, e.Encode(w, symbol))
	}
	require.NoError(t, w.Close())

	// 0 1100 111 100 101 1101, then zero padding
	assert.Equal(t, []byte{0x67, 0x97, 0x40}, buf.Bytes())
}

func TestEncoder_EncodeUnknownSymbol(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Init(6, []uint64{5, 0, 0, 2, 0, 3}))

	for _, symbol := range []Symbol{InvalidSymbol, 1, 2, 4, 6, MaxSymbol} {
		var buf bytes.Buffer
		w := bitio.NewWriter(&buf)
		err := e.Encode(w, symbol)
		assert.True(t, errors.Is(err, ErrUnknownSymbol), "symbol %d: %v", symbol, err)
		require.NoError(t, w.Close())
		assert.Empty(t, buf.Bytes(), "symbol %d", symbol)
	}
}

func TestEncoder_SingleSymbol(t *testing.T) {
	var e Encoder
	require.NoError(t, e.Init(3, []uint64{0, 0, 7}))

	assert.Equal(t, byte(0), e.MinSize())
	assert.Equal(t, byte(0), e.MaxSize())

	hc, ok := e.Code(2)
	assert.True(t, ok)
	assert.Equal(t, Code{}, hc)
	_, ok = e.Code(0)
	assert.False(t, ok)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for i := 0; i < 10; i++ {
		require.NoError(t, e.Encode(w, 2))
	}
	require.NoError(t, w.Close())
	assert.Empty(t, buf.Bytes())
}

func TestEncoder_NoSymbols(t *testing.T) {
	e := makeTestEncoder(t)

	err := e.Init(4, []uint64{0, 0, 0, 0})
	assert.True(t, errors.Is(err, ErrNoSymbols))
	assert.Nil(t, e.Tree())

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	assert.True(t, errors.Is(e.Store(w), ErrNoTree))
	assert.True(t, errors.Is(e.Encode(w, 0), ErrUnknownSymbol))
}

func TestEncoder_Store(t *testing.T) {
	type testRow struct {
		name        string
		frequencies []uint64
		expect      []byte
	}

	testData := [...]testRow{
		{"six", []uint64{5, 9, 12, 13, 16, 45}, []byte{0x00, 0x05, 0x1a, 0xb9, 0x1e, 0x02, 0x80}},
		{"sparse", []uint64{5, 0, 0, 2, 0, 3}, []byte{0x00, 0x05, 0x0f, 0x35, 0x00}},
		{"single", []uint64{0, 0, 7}, []byte{0x00, 0x02, 0x90}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var e Encoder
			require.NoError(t, e.Init(len(row.frequencies), row.frequencies))

			var buf bytes.Buffer
			w := bitio.NewWriter(&buf)
			require.NoError(t, e.Store(w))
			require.NoError(t, w.Close())
			assert.Equal(t, row.expect, buf.Bytes())
		})
	}
}
