package cmd

import (
	"io"

	"firestige.xyz/v6hdr/internal/core"
	"firestige.xyz/v6hdr/internal/core/decoder"
	"firestige.xyz/v6hdr/internal/log"
	"firestige.xyz/v6hdr/internal/render"
)

// HeaderDecoder turns header text into a Header. Tests substitute a mock.
type HeaderDecoder interface {
	Decode(text string) (core.Header, error)
}

// hexDecoder is the HeaderDecoder backed by decoder.DecodeHex.
type hexDecoder struct {
	strict bool
	logger log.Logger
}

func (d hexDecoder) Decode(text string) (core.Header, error) {
	return decoder.DecodeHex(text,
		decoder.WithStrictLength(d.strict),
		decoder.WithTrailingHook(func(extra int) {
			d.logger.WithField("ignored", extra).Warn("input longer than one header, trailing characters ignored")
		}),
	)
}

func (a *app) runDecode(input string) error {
	r, err := render.Get(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	dec := hexDecoder{strict: a.cfg.Decoder.StrictLength, logger: log.GetLogger()}
	return runDecode(dec, r, input, a.stdout)
}

// runDecode decodes input and renders it to w. Nothing is written on failure.
func runDecode(dec HeaderDecoder, r render.Renderer, input string, w io.Writer) error {
	logger := log.GetLogger()

	h, err := dec.Decode(input)
	if err != nil {
		logger.WithError(err).Debug("decode failed")
		return err
	}

	if logger.IsDebugEnabled() {
		logger.WithFields(map[string]interface{}{
			"version":     h.Version,
			"next_header": h.NextHeader,
			"src":         h.Source.String(),
			"dst":         h.Destination.String(),
		}).Debug("header decoded")
	}

	return r.Render(w, h)
}
