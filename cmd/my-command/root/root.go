package root

import (
	"github.com/flarebyte/my-command/internal/dispatch"
	"github.com/spf13/cobra"
)

// endOfCommands is prepended by Execute so cobra never matches a user token
// against its reserved commands (completion, __complete). RunE drops it.
const endOfCommands = "--"

// NewRootCmd creates the root command for my-command. It expects to be run
// through Execute, which supplies the leading endOfCommands marker.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "my-command [args...]",
		Short: "CLI: echo the arguments and recognize --help or --version",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == endOfCommands {
				args = args[1:]
			}
			return dispatch.Run(cmd.OutOrStdout(), args)
		},
		// Raw tokens go to the dispatcher untouched; cobra must not
		// intercept --help or reject unknown flags.
		DisableFlagParsing: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	return execute(NewRootCmd(), args)
}

func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(append([]string{endOfCommands}, args...))
	return cmd.Execute()
}
