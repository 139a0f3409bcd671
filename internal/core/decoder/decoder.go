// Package decoder implements the fixed-header codec: hex text to Header and back.
package decoder

import (
	"strconv"

	"firestige.xyz/v6hdr/internal/core"
)

// Each 32-bit word is eight hex characters; the header is ten words.
const (
	wordHexLen = 8
	wordCount  = core.HeaderHexLen / wordHexLen
)

// Bit layout of word 0: version | traffic class | flow label.
const (
	versionBits      = 4
	trafficClassBits = 8
	flowLabelBits    = 20

	versionShift      = trafficClassBits + flowLabelBits
	trafficClassShift = flowLabelBits
	flowLabelShift    = 0
)

// Bit layout of word 1: payload length | next header | hop limit.
const (
	payloadLengthBits = 16
	nextHeaderBits    = 8
	hopLimitBits      = 8

	payloadLengthShift = nextHeaderBits + hopLimitBits
	nextHeaderShift    = hopLimitBits
	hopLimitShift      = 0
)

// Address words are split into two 16-bit halves.
const (
	halfBits  = 16
	halfShift = 16

	srcFirstWord = 2
	dstFirstWord = 6
	addrWords    = core.AddressGroups / 2
)

const (
	maxVersion   = 1<<versionBits - 1
	maxFlowLabel = 1<<flowLabelBits - 1
)

// field extracts width bits of word starting at bit shift (LSB = bit 0).
func field(word uint32, shift, width uint) uint32 {
	return (word >> shift) & (1<<width - 1)
}

// DecodeHex decodes the first 80 hex characters of text into a Header.
// Characters past the header are ignored unless strict length is requested.
func DecodeHex(text string, opts ...Option) (core.Header, error) {
	o := newOptions(opts)

	if len(text) < core.HeaderHexLen {
		return core.Header{}, &core.ParseError{Offset: len(text), Group: -1, Err: core.ErrInputTooShort}
	}
	if extra := len(text) - core.HeaderHexLen; extra > 0 {
		if o.strict {
			return core.Header{}, &core.ParseError{Offset: len(text), Group: -1, Err: core.ErrTrailingInput}
		}
		if o.onTrailing != nil {
			o.onTrailing(extra)
		}
	}

	var words [wordCount]uint32
	for i := range words {
		off := i * wordHexLen
		group := text[off : off+wordHexLen]
		v, err := strconv.ParseUint(group, 16, 32)
		if err != nil {
			return core.Header{}, &core.ParseError{Offset: off, Group: i, Text: group, Err: core.ErrInvalidHex}
		}
		words[i] = uint32(v)
	}

	return fromWords(words), nil
}

func fromWords(w [wordCount]uint32) core.Header {
	return core.Header{
		Version:       uint8(field(w[0], versionShift, versionBits)),
		TrafficClass:  uint8(field(w[0], trafficClassShift, trafficClassBits)),
		FlowLabel:     field(w[0], flowLabelShift, flowLabelBits),
		PayloadLength: uint16(field(w[1], payloadLengthShift, payloadLengthBits)),
		NextHeader:    uint8(field(w[1], nextHeaderShift, nextHeaderBits)),
		HopLimit:      uint8(field(w[1], hopLimitShift, hopLimitBits)),
		Source:        addressFromWords(w[srcFirstWord : srcFirstWord+addrWords]),
		Destination:   addressFromWords(w[dstFirstWord : dstFirstWord+addrWords]),
	}
}

func addressFromWords(words []uint32) core.Address {
	var a core.Address
	for i, w := range words {
		a[2*i] = uint16(field(w, halfShift, halfBits))
		a[2*i+1] = uint16(field(w, 0, halfBits))
	}
	return a
}
