package decoder

import (
	"encoding/hex"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/v6hdr/internal/core"
)

func TestEncodeHexRoundTrip(t *testing.T) {
	inputs := []string{
		strings.Repeat("0", core.HeaderHexLen),
		strings.Repeat("f", core.HeaderHexLen),
		strings.Repeat("F", core.HeaderHexLen),
		sampleInput[:core.HeaderHexLen],
		strings.ToUpper(sampleInput[:core.HeaderHexLen]),
	}

	rng := rand.New(rand.NewSource(7))
	raw := make([]byte, core.HeaderLen)
	for i := 0; i < 100; i++ {
		rng.Read(raw)
		inputs = append(inputs, hex.EncodeToString(raw))
	}

	for _, in := range inputs {
		h, err := DecodeHex(in)
		require.NoError(t, err)

		out, err := EncodeHex(h)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(in), out)
	}
}

func TestEncodeLayout(t *testing.T) {
	h := core.Header{
		Version:       6,
		TrafficClass:  0xab,
		FlowLabel:     0xcdef1,
		PayloadLength: 0x1234,
		NextHeader:    17,
		HopLimit:      64,
		Source:        core.Address{0x2001, 0x0db8, 0, 0, 0, 0, 0, 1},
		Destination:   core.Address{0xfe80, 0, 0, 0, 0x0200, 0x5eff, 0xfe00, 1},
	}

	b, err := Encode(h)
	require.NoError(t, err)
	require.Len(t, b, core.HeaderLen)

	assert.Equal(t, []byte{0x6a, 0xbc, 0xde, 0xf1}, b[0:4])
	assert.Equal(t, []byte{0x12, 0x34, 17, 64}, b[4:8])
	assert.Equal(t, h.Source.As16(), [16]byte(b[8:24]))
	assert.Equal(t, h.Destination.As16(), [16]byte(b[24:40]))
}

func TestEncodeOverflow(t *testing.T) {
	_, err := Encode(core.Header{Version: 16})
	assert.ErrorIs(t, err, core.ErrFieldOverflow)

	_, err = EncodeHex(core.Header{Version: 6, FlowLabel: maxFlowLabel + 1})
	assert.ErrorIs(t, err, core.ErrFieldOverflow)

	_, err = Encode(core.Header{Version: maxVersion, FlowLabel: maxFlowLabel})
	assert.NoError(t, err)
}

func TestProtocolName(t *testing.T) {
	assert.Equal(t, "TCP", ProtocolName(6))
	assert.Equal(t, "UDP", ProtocolName(17))
	assert.Equal(t, "ICMPv6", ProtocolName(58))
}
