package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wrenkit/wren"
	"github.com/wrenkit/wren/output"
)

// RootCmd creates and returns the root command for the wren CLI
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wren",
		Short: "Styled, verbosity-aware console output",
		Long: `Wren writes messages through an output channel with inline markup,
a verbosity gate, and automatic color detection.

Set WREN_VERBOSITY=quiet|normal|verbose or WREN_NO_COLOR=1 to control
output without flags.`,
		Version: wren.Version,
	}

	viper.SetEnvPrefix("wren")
	viper.AutomaticEnv()

	return cmd
}

// channelFromEnv builds a stdout channel honoring the WREN_* environment
func channelFromEnv() *output.Output {
	out := output.Stdout()

	if viper.GetBool("no_color") {
		out.SetDecorated(false)
	}

	switch strings.ToLower(viper.GetString("verbosity")) {
	case "quiet":
		out.SetVerbosity(output.Quiet)
	case "verbose":
		out.SetVerbosity(output.Verbose)
	}

	return out
}
