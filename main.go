// Package main is the entry point for the v6hdr header decoder.
package main

import (
	"os"

	"firestige.xyz/v6hdr/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
