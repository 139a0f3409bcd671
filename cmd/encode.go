package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/netip"

	"github.com/spf13/cobra"

	"firestige.xyz/v6hdr/internal/core"
	"firestige.xyz/v6hdr/internal/core/decoder"
	"firestige.xyz/v6hdr/internal/log"
)

// encodeFlags mirrors the header fields; addresses stay text until validated.
type encodeFlags struct {
	version       uint8
	trafficClass  uint8
	flowLabel     uint32
	payloadLength uint16
	nextHeader    uint8
	hopLimit      uint8
	src           string
	dst           string
}

func newEncodeCmd(a *app) *cobra.Command {
	var f encodeFlags

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode header fields into 80 hex characters",
		Long: `Encode builds the 40-byte header from its fields and prints it as 80 lowercase
hexadecimal characters, the input format of the root command.

Examples:
  v6hdr encode --next-header 58 --hop-limit 255 --src db82:: --dst 120:2000::
  v6hdr encode --traffic-class 0xb8 --flow-label 0x12345 --src ::1 --dst ::1`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &core.UsageError{Msg: "too many arguments!"}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(f, a.stdout)
		},
	}

	fs := encodeCmd.Flags()
	fs.Uint8Var(&f.version, "version", 6, "version (0-15)")
	fs.Uint8Var(&f.trafficClass, "traffic-class", 0, "traffic class (0-255)")
	fs.Uint32Var(&f.flowLabel, "flow-label", 0, "flow label (0-1048575)")
	fs.Uint16Var(&f.payloadLength, "payload-length", 0, "payload length (0-65535)")
	fs.Uint8Var(&f.nextHeader, "next-header", 0, "next header protocol code (0-255)")
	fs.Uint8Var(&f.hopLimit, "hop-limit", 64, "hop limit (0-255)")
	fs.StringVar(&f.src, "src", "::", "source address")
	fs.StringVar(&f.dst, "dst", "::", "destination address")

	return encodeCmd
}

func runEncode(f encodeFlags, w io.Writer) error {
	src, err := parseAddress("src", f.src)
	if err != nil {
		return err
	}
	dst, err := parseAddress("dst", f.dst)
	if err != nil {
		return err
	}

	h := core.Header{
		Version:       f.version,
		TrafficClass:  f.trafficClass,
		FlowLabel:     f.flowLabel,
		PayloadLength: f.payloadLength,
		NextHeader:    f.nextHeader,
		HopLimit:      f.hopLimit,
		Source:        src,
		Destination:   dst,
	}

	out, err := decoder.EncodeHex(h)
	if errors.Is(err, core.ErrFieldOverflow) {
		return &core.UsageError{Msg: err.Error()}
	}
	if err != nil {
		return err
	}

	log.GetLogger().WithField("header", out).Debug("header encoded")
	_, err = fmt.Fprintln(w, out)
	return err
}

// parseAddress accepts IPv6 text only; zones are rejected.
func parseAddress(flag, text string) (core.Address, error) {
	addr, err := netip.ParseAddr(text)
	if err != nil {
		return core.Address{}, &core.UsageError{Msg: fmt.Sprintf("invalid --%s: %v", flag, err)}
	}
	if !addr.Is6() || addr.Zone() != "" {
		return core.Address{}, &core.UsageError{Msg: fmt.Sprintf("invalid --%s: %q is not an IPv6 address", flag, text)}
	}
	return core.AddressFrom16(addr.As16()), nil
}
