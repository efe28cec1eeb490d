package commands

import (
	"github.com/spf13/cobra"
	"github.com/wrenkit/wren/format"
	"github.com/wrenkit/wren/output"
)

// EchoCmd writes its arguments through an output channel
func EchoCmd() *cobra.Command {
	var (
		quiet     bool
		verbose   bool
		noColor   bool
		raw       bool
		plain     bool
		noNewline bool
		themePath string
	)

	cmd := &cobra.Command{
		Use:   "echo [flags] <message>...",
		Short: "Write messages through an output channel",
		Long: `Echo writes each message through a wren output channel, one per line.

Messages may carry inline markup:

  wren echo "<info>listening on</info> <comment>:8080</comment>"

Markup renders as color on a terminal and is stripped when piped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := channelFromEnv()

			if noColor {
				out.SetDecorated(false)
			}
			if quiet {
				out.SetVerbosity(output.Quiet)
			} else if verbose {
				out.SetVerbosity(output.Verbose)
			}

			if themePath != "" {
				theme, err := format.LoadTheme(themePath)
				if err != nil {
					return err
				}
				if m, ok := out.Formatter().(*format.Markup); ok {
					theme.Apply(m)
				}
			}

			t := output.TypeNormal
			switch {
			case raw:
				t = output.TypeRaw
			case plain:
				t = output.TypePlain
			}

			return out.Write(t, !noNewline, args...)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color and styling")
	cmd.Flags().BoolVar(&raw, "raw", false, "Emit messages without any formatting")
	cmd.Flags().BoolVar(&plain, "plain", false, "Format, then strip markup and styling")
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "Do not append trailing newlines")
	cmd.Flags().StringVar(&themePath, "theme", "", "Path to a YAML style theme")

	cmd.MarkFlagsMutuallyExclusive("raw", "plain")
	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose")

	return cmd
}
