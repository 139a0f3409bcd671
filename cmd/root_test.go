package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHex = "6000000008013affdb82000000000000000000000000000001202000000000000000000000000000"

const sampleText = "version: 6\n" +
	"traffic_class: 0\n" +
	"flow label: 0\n" +
	"payload length: 2049\n" +
	"next header: 58\n" +
	"hop limit: 255\n" +
	"source address: db82::\n" +
	"destination address: 120:2000::\n"

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExecuteDecode(t *testing.T) {
	code, stdout, stderr := run(t, sampleHex)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, sampleText, stdout)
	assert.Empty(t, stderr)
}

func TestExecuteArgumentCount(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		code, stdout, stderr := run(t)
		assert.Equal(t, ExitUsage, code)
		assert.Empty(t, stdout)
		assert.Equal(t, "No argument!\n", stderr)
	})

	t.Run("two", func(t *testing.T) {
		code, stdout, stderr := run(t, sampleHex, sampleHex)
		assert.Equal(t, ExitUsage, code)
		assert.Empty(t, stdout)
		assert.Equal(t, "too many arguments!\n", stderr)
	})

	t.Run("unknown flag", func(t *testing.T) {
		code, _, stderr := run(t, "--bogus", sampleHex)
		assert.Equal(t, ExitUsage, code)
		assert.Contains(t, stderr, "bogus")
	})
}

func TestExecuteMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short", sampleHex[:40], "input too short"},
		{"not hex", "zz" + sampleHex[2:], "invalid hexadecimal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, tt.input)
			assert.Equal(t, ExitMalformedInput, code)
			assert.Empty(t, stdout)
			assert.True(t, strings.HasPrefix(stderr, "Error: decode header: "), stderr)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestExecuteTrailingInput(t *testing.T) {
	long := sampleHex + "00000001"

	t.Run("lenient", func(t *testing.T) {
		code, stdout, _ := run(t, long)
		assert.Equal(t, ExitOK, code)
		assert.Equal(t, sampleText, stdout)
	})

	t.Run("strict flag", func(t *testing.T) {
		code, stdout, stderr := run(t, "--strict", long)
		assert.Equal(t, ExitMalformedInput, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "unexpected trailing input")
	})

	t.Run("strict from env", func(t *testing.T) {
		t.Setenv("V6HDR_DECODER_STRICT_LENGTH", "true")
		code, _, _ := run(t, long)
		assert.Equal(t, ExitMalformedInput, code)

		code, _, _ = run(t, "--strict=false", long)
		assert.Equal(t, ExitOK, code)
	})
}

func TestExecuteOutputFormats(t *testing.T) {
	code, stdout, _ := run(t, "-o", "json", sampleHex)
	require.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, `"next_header_name": "ICMPv6"`)

	code, stdout, _ = run(t, "--output", "yaml", sampleHex)
	require.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "payload_length: 2049\n")

	code, stdout, stderr := run(t, "-o", "xml", sampleHex)
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid output format")
}

func TestExecuteConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v6hdr.yml")
	require.NoError(t, os.WriteFile(path, []byte("v6hdr:\n  output:\n    format: json\n"), 0644))

	code, stdout, _ := run(t, "-c", path, sampleHex)
	require.Equal(t, ExitOK, code)
	assert.True(t, strings.HasPrefix(stdout, "{"), stdout)

	code, stdout, _ = run(t, "-c", path, "-o", "text", sampleHex)
	require.Equal(t, ExitOK, code)
	assert.Equal(t, sampleText, stdout)

	code, _, stderr := run(t, "-c", filepath.Join(t.TempDir(), "missing.yml"), sampleHex)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "failed to read config file")
}

func TestExecuteLogLevel(t *testing.T) {
	code, stdout, _ := run(t, "--log-level", "debug", sampleHex)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, sampleText, stdout, "logs never reach stdout")

	code, _, stderr := run(t, "--log-level", "loud", sampleHex)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "invalid log level")
}
