package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/hansbonini/mcdtools/pkg"
	"github.com/hansbonini/mcdtools/pkg/common"
)

const (
	flagVerbose = "verbose"
	flagStrict  = "strict"
	flagYAML    = "yaml"
	flagOutput  = "output"
)

// addCardFlags registers the flags shared by every card subcommand
func addCardFlags(flags *pflag.FlagSet) {
	flags.BoolP(flagVerbose, "v", false, "Enable verbose output (show debug messages)")
	flags.Bool(flagStrict, false, "Treat directory frame checksum mismatches as errors")
}

// newProcessorFromFlags applies the shared flags and returns a configured processor
func newProcessorFromFlags(flags *pflag.FlagSet) (*pkg.MemoryCardProcessor, error) {
	verbose, err := flags.GetBool(flagVerbose)
	if err != nil {
		return nil, fmt.Errorf("error getting verbose flag: %w", err)
	}
	common.SetVerboseMode(verbose)

	strict, err := flags.GetBool(flagStrict)
	if err != nil {
		return nil, fmt.Errorf("error getting strict flag: %w", err)
	}

	processor := pkg.NewMemoryCardProcessor()
	processor.SetStrictChecksums(strict)
	return processor, nil
}
