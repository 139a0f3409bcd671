// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"firestige.xyz/v6hdr/internal/config"
	"firestige.xyz/v6hdr/internal/core"
	"firestige.xyz/v6hdr/internal/log"
)

// options holds flag values. Flags left unset fall back to the config file.
type options struct {
	configFile string
	logLevel   string
	output     string
	strict     bool
}

// app carries per-invocation state shared by the commands.
type app struct {
	opts   options
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

// newRootCmd builds the command tree writing decoded output to stdout.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "v6hdr <hex>",
		Short: "Decode a fixed 40-byte IPv6-style header given as hex text",
		Long: `v6hdr decodes a 40-byte header, laid out like the IPv6 fixed header and
supplied as 80 hexadecimal characters, and prints its fields.

Characters after the first 80 are ignored unless --strict is given.

Examples:
  v6hdr 6000000008013affdb82000000000000000000000000000001202000000000000000000000000000
  v6hdr -o json <hex>                 # print as JSON
  v6hdr --strict <hex>                # reject input that is not exactly 80 characters
  v6hdr encode --src 2001:db8::1 --dst 2001:db8::2 --next-header 58 --hop-limit 255`,
		Args:              exactlyOneHeader,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if err := log.Close(); err != nil {
				fmt.Fprintf(a.stderr, "Error: close log: %v\n", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDecode(args[0])
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &core.UsageError{Msg: err.Error()}
	})

	rootCmd.PersistentFlags().StringVarP(&a.opts.configFile, "config", "c", "",
		"config file path (YAML, root key v6hdr)")
	rootCmd.PersistentFlags().StringVar(&a.opts.logLevel, "log-level", "",
		"log level: trace/debug/info/warn/error (overrides config)")
	rootCmd.Flags().StringVarP(&a.opts.output, "output", "o", "",
		"output format: text/json/yaml (overrides config)")
	rootCmd.Flags().BoolVar(&a.opts.strict, "strict", false,
		"reject input whose length is not exactly 80 characters")

	rootCmd.AddCommand(newEncodeCmd(a))

	return rootCmd
}

// exactlyOneHeader enforces a single positional argument.
func exactlyOneHeader(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &core.UsageError{Msg: "No argument!"}
	case len(args) > 1:
		return &core.UsageError{Msg: "too many arguments!"}
	}
	return nil
}

// setup loads configuration, applies flag overrides and initializes logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.opts.configFile)
	if err != nil {
		return err
	}

	applyFlagOverrides(cmd.Flags(), a.opts, cfg)
	if err := cfg.ValidateAndApplyDefaults(); err != nil {
		return err
	}

	if err := log.Init(cfg.Log); err != nil {
		return fmt.Errorf("failed to init log: %w", err)
	}
	a.cfg = cfg

	log.GetLogger().WithFields(map[string]interface{}{
		"command": cmd.Name(),
		"config":  a.opts.configFile,
		"output":  cfg.Output.Format,
		"strict":  cfg.Decoder.StrictLength,
	}).Debug("configuration loaded")
	return nil
}

func applyFlagOverrides(fs *pflag.FlagSet, o options, cfg *config.Config) {
	if fs.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if fs.Changed("output") {
		cfg.Output.Format = o.output
	}
	if fs.Changed("strict") {
		cfg.Decoder.StrictLength = o.strict
	}
}
