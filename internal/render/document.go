package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"firestige.xyz/v6hdr/internal/core"
	"firestige.xyz/v6hdr/internal/core/decoder"
)

const (
	JSONName = "json"
	YAMLName = "yaml"
)

func init() {
	Register(JSONName, func() Renderer { return jsonRenderer{} })
	Register(YAMLName, func() Renderer { return yamlRenderer{} })
}

// document is the structured form shared by the json and yaml renderers.
type document struct {
	Version            uint8  `json:"version" yaml:"version"`
	TrafficClass       uint8  `json:"traffic_class" yaml:"traffic_class"`
	FlowLabel          uint32 `json:"flow_label" yaml:"flow_label"`
	PayloadLength      uint16 `json:"payload_length" yaml:"payload_length"`
	NextHeader         uint8  `json:"next_header" yaml:"next_header"`
	NextHeaderName     string `json:"next_header_name" yaml:"next_header_name"`
	HopLimit           uint8  `json:"hop_limit" yaml:"hop_limit"`
	SourceAddress      string `json:"source_address" yaml:"source_address"`
	DestinationAddress string `json:"destination_address" yaml:"destination_address"`
}

func newDocument(h core.Header) document {
	return document{
		Version:            h.Version,
		TrafficClass:       h.TrafficClass,
		FlowLabel:          h.FlowLabel,
		PayloadLength:      h.PayloadLength,
		NextHeader:         h.NextHeader,
		NextHeaderName:     decoder.ProtocolName(h.NextHeader),
		HopLimit:           h.HopLimit,
		SourceAddress:      h.Source.String(),
		DestinationAddress: h.Destination.String(),
	}
}

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, h core.Header) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDocument(h)); err != nil {
		return fmt.Errorf("json encode failed: %w", err)
	}
	return nil
}

type yamlRenderer struct{}

func (yamlRenderer) Render(w io.Writer, h core.Header) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(h)); err != nil {
		return fmt.Errorf("yaml encode failed: %w", err)
	}
	return enc.Close()
}
