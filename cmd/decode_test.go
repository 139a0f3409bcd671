package cmd

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"firestige.xyz/v6hdr/internal/core"
	"firestige.xyz/v6hdr/internal/render"
)

// MockDecoder implements HeaderDecoder
type MockDecoder struct {
	mock.Mock
}

func (m *MockDecoder) Decode(text string) (core.Header, error) {
	args := m.Called(text)
	return args.Get(0).(core.Header), args.Error(1)
}

// MockRenderer implements render.Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(w io.Writer, h core.Header) error {
	args := m.Called(w, h)
	return args.Error(0)
}

func TestRunDecode_Success(t *testing.T) {
	h := core.Header{Version: 6, HopLimit: 64}
	dec := new(MockDecoder)
	dec.On("Decode", "input").Return(h, nil)

	r, err := render.Get(render.TextName)
	assert.NoError(t, err)

	var buf bytes.Buffer
	err = runDecode(dec, r, "input", &buf)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "version: 6\n")
	assert.Contains(t, buf.String(), "hop limit: 64\n")
	dec.AssertExpectations(t)
}

func TestRunDecode_DecodeError(t *testing.T) {
	parseErr := &core.ParseError{Offset: 3, Group: -1, Err: core.ErrInputTooShort}
	dec := new(MockDecoder)
	dec.On("Decode", "abc").Return(core.Header{}, parseErr)
	r := new(MockRenderer)

	var buf bytes.Buffer
	err := runDecode(dec, r, "abc", &buf)

	assert.ErrorIs(t, err, core.ErrInputTooShort)
	assert.Equal(t, ExitMalformedInput, exitCode(err))
	assert.Empty(t, buf.String())
	r.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	dec.AssertExpectations(t)
}

func TestRunDecode_RenderError(t *testing.T) {
	dec := new(MockDecoder)
	dec.On("Decode", "input").Return(core.Header{}, nil)
	r := new(MockRenderer)
	r.On("Render", mock.Anything, core.Header{}).Return(errors.New("broken pipe"))

	err := runDecode(dec, r, "input", io.Discard)

	assert.EqualError(t, err, "broken pipe")
	assert.Equal(t, ExitFailure, exitCode(err))
	r.AssertExpectations(t)
}

func TestHexDecoderStrict(t *testing.T) {
	lenient := hexDecoder{logger: testLogger(t)}
	_, err := lenient.Decode(sampleHex + "ff")
	assert.NoError(t, err)

	strict := hexDecoder{strict: true, logger: testLogger(t)}
	_, err = strict.Decode(sampleHex + "ff")
	assert.ErrorIs(t, err, core.ErrTrailingInput)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, exitCode(nil))
	assert.Equal(t, ExitUsage, exitCode(&core.UsageError{Msg: "No argument!"}))
	assert.Equal(t, ExitMalformedInput, exitCode(&core.ParseError{Group: 1, Err: core.ErrInvalidHex}))
	assert.Equal(t, ExitFailure, exitCode(core.ErrConfigInvalid))
}
