package render

import (
	"fmt"
	"io"

	"firestige.xyz/v6hdr/internal/core"
)

const TextName = "text"

func init() {
	Register(TextName, func() Renderer { return textRenderer{} })
}

// textRenderer prints one "label: value" line per field.
type textRenderer struct{}

func (textRenderer) Render(w io.Writer, h core.Header) error {
	_, err := fmt.Fprintf(w,
		"version: %d\n"+
			"traffic_class: %d\n"+
			"flow label: %d\n"+
			"payload length: %d\n"+
			"next header: %d\n"+
			"hop limit: %d\n"+
			"source address: %s\n"+
			"destination address: %s\n",
		h.Version,
		h.TrafficClass,
		h.FlowLabel,
		h.PayloadLength,
		h.NextHeader,
		h.HopLimit,
		h.Source,
		h.Destination,
	)
	return err
}
