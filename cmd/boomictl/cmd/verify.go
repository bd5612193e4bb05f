package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [atom_name] [environment_name] [process_name]",
	Short: "Validate a launch target without running anything",
	Long: `Run the same validation chain as 'run' and report the resolved
identifiers, but never submit an execution request. Useful for checking a
scheduled launch before its first real run.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		atomName, environmentName, processName := args[0], args[1], args[2]

		client, ctx, err := newClient()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		result, err := client.Verify(ctx, atomName, environmentName, processName)
		if err != nil {
			cmd.Println(describeError(err))
			os.Exit(1)
		}

		cmd.Printf("✓ Launch target is valid\n")
		cmd.Printf("Atom ID:        %s (%s)\n", result.AtomID, atomName)
		cmd.Printf("Environment ID: %s (%s)\n", result.EnvironmentID, environmentName)
		cmd.Printf("Process ID:     %s (%s)\n", result.ProcessID, processName)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
