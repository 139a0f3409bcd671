package decoder

import (
	"encoding/hex"
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"firestige.xyz/v6hdr/internal/core"
)

// Encode serializes h back into its 40-byte wire form.
func Encode(h core.Header) ([]byte, error) {
	if h.Version > maxVersion {
		return nil, fmt.Errorf("version %d: %w", h.Version, core.ErrFieldOverflow)
	}
	if h.FlowLabel > maxFlowLabel {
		return nil, fmt.Errorf("flow label %d: %w", h.FlowLabel, core.ErrFieldOverflow)
	}

	src, dst := h.Source.As16(), h.Destination.As16()
	ip6 := &layers.IPv6{
		Version:      h.Version,
		TrafficClass: h.TrafficClass,
		FlowLabel:    h.FlowLabel,
		Length:       h.PayloadLength,
		NextHeader:   layers.IPProtocol(h.NextHeader),
		HopLimit:     h.HopLimit,
		SrcIP:        net.IP(src[:]),
		DstIP:        net.IP(dst[:]),
	}

	// FixLengths stays off so PayloadLength is written verbatim.
	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, ip6); err != nil {
		return nil, fmt.Errorf("serialize header: %w", err)
	}

	out := buf.Bytes()
	if len(out) != core.HeaderLen {
		return nil, fmt.Errorf("serialize header: got %d bytes, want %d", len(out), core.HeaderLen)
	}
	return out, nil
}

// EncodeHex is Encode rendered as lowercase hex.
func EncodeHex(h core.Header) (string, error) {
	b, err := Encode(h)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ProtocolName returns the registered name of a next-header code, e.g. "ICMPv6" for 58.
func ProtocolName(code uint8) string {
	return layers.IPProtocol(code).String()
}
