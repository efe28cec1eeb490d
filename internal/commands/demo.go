package commands

import (
	"github.com/spf13/cobra"
	"github.com/wrenkit/wren/output"
	"github.com/wrenkit/wren/style"
)

// DemoCmd showcases the styled message helpers
func DemoCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Show the styled message helpers",
		Run: func(cmd *cobra.Command, args []string) {
			out := channelFromEnv()
			if verbose {
				out.SetVerbosity(output.Verbose)
			}

			st := style.New(out)
			st.Success("Created project: myapp")
			st.Info("Next steps:")
			st.Step("cd myapp")
			st.Step("go mod tidy")
			st.Warning("No database configured")
			st.Verbose("Loaded theme from defaults")
			st.Error("This is what failures look like")
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include verbose-only messages")

	return cmd
}
