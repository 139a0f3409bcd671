// Package core defines core types with zero external dependencies.
package core

import (
	"encoding/binary"
	"net/netip"
)

const (
	// HeaderLen is the size of the fixed header in bytes.
	HeaderLen = 40
	// HeaderHexLen is the number of hex characters encoding one header.
	HeaderHexLen = HeaderLen * 2
	// AddressGroups is the number of 16-bit groups in an address.
	AddressGroups = 8
)

// Header is the decoded fixed header. It is a plain value; copies are independent.
type Header struct {
	Version       uint8  // 4 bits
	TrafficClass  uint8  // 8 bits
	FlowLabel     uint32 // 20 bits
	PayloadLength uint16
	NextHeader    uint8 // protocol code, not validated
	HopLimit      uint8
	Source        Address
	Destination   Address
}

// Address is a 128-bit address held as eight big-endian 16-bit groups.
type Address [AddressGroups]uint16

// AddressFrom16 builds an Address from its 16-byte network representation.
func AddressFrom16(b [16]byte) Address {
	var a Address
	for i := range a {
		a[i] = binary.BigEndian.Uint16(b[i*2:])
	}
	return a
}

// As16 returns the 16-byte network representation of a.
func (a Address) As16() [16]byte {
	var b [16]byte
	for i, g := range a {
		binary.BigEndian.PutUint16(b[i*2:], g)
	}
	return b
}

// Addr converts a to a netip.Addr. The result is always an IPv6 address,
// IPv4-mapped forms included.
func (a Address) Addr() netip.Addr {
	return netip.AddrFrom16(a.As16())
}

// String returns the canonical text form (lowercase, zero-compressed).
func (a Address) String() string {
	return a.Addr().String()
}
