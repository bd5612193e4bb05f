package cmd

import (
	"os"

	"boomictl/internal/boomi"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [atom_name] [environment_name] [process_name]",
	Short: "Validate and launch a process on an atom",
	Long: `Validate that the atom, environment, and process exist and are correctly
related, then launch the process on the atom.

The launch only fires after every check passes: the atom name resolves to
exactly one atom, the atom is attached to the named environment, the process
name resolves to exactly one process, and the process has an active
deployment in that environment.

Example:
  boomictl run "My Atom" "Production" "Nightly Sync"
  boomictl run "My Atom" "Production" "Nightly Sync" -w -d "EmailTo:ops@example.com;Retries:3"`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		atomName, environmentName, processName := args[0], args[1], args[2]

		flags := cmd.Flags()
		wait, _ := flags.GetBool("wait")
		propsArg, _ := flags.GetString("props")
		pollInterval, _ := flags.GetDuration("poll-interval")
		maxInterval, _ := flags.GetDuration("poll-max-interval")
		maxAttempts, _ := flags.GetInt("max-attempts")

		props, err := boomi.ParseProperties(propsArg)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		client, ctx, err := newClient()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		if wait {
			cmd.Printf("Launching process %q on atom %q and waiting for completion...\n", processName, atomName)
		}

		result, err := client.Execute(ctx, boomi.LaunchSpec{
			AtomName:        atomName,
			EnvironmentName: environmentName,
			ProcessName:     processName,
			Properties:      props,
			Wait:            wait,
			Poll: boomi.PollConfig{
				Interval:    pollInterval,
				MaxInterval: maxInterval,
				MaxAttempts: maxAttempts,
			},
		})
		if err != nil {
			cmd.Println(describeError(err))
			if result != nil && result.RequestID != "" {
				cmd.Printf("Request ID: %s\n", result.RequestID)
			}
			os.Exit(1)
		}

		if !wait {
			cmd.Printf("🚀 Process %q sent to atom %q!\nRequest ID: %s\nStatus:     %s\n",
				processName, atomName, result.RequestID, colorizeStatus(result.Status))
			return
		}

		cmd.Printf("%s Execution finished\n", statusIcon(result.Status))
		cmd.Printf("Request ID: %s\n", result.RequestID)
		cmd.Printf("Status:     %s\n", colorizeStatus(result.Status))
		if result.Record != nil {
			if result.Record.Message != "" {
				cmd.Printf("Message:    %s\n", result.Record.Message)
			}
			if !result.Record.RecordedDate.IsZero() {
				cmd.Printf("Recorded:   %s\n", result.Record.RecordedDate.Format("Mon, 02 Jan 2006 15:04:05 MST"))
			}
		}

		if !result.Status.Succeeded() {
			os.Exit(1)
		}
	},
}

func init() {
	flags := runCmd.Flags()
	flags.BoolP("wait", "w", false, "Wait for the execution to reach a terminal state")
	flags.StringP("props", "d", "", "Dynamic process properties as name:value pairs separated by semicolons")
	flags.Duration("poll-interval", boomi.DefaultPollInterval, "Initial delay between status checks in wait mode")
	flags.Duration("poll-max-interval", boomi.DefaultMaxPollInterval, "Maximum delay between status checks in wait mode")
	flags.Int("max-attempts", boomi.DefaultMaxPollAttempts, "Maximum number of status checks in wait mode")

	rootCmd.AddCommand(runCmd)
}
