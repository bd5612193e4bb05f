package cmd

import (
	"fmt"
	"os"
	"time"

	"boomictl/internal/boomi"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [request_id]",
	Short: "Get the status of a launched execution",
	Long:  `Retrieve the current state of an execution request, including its status (PENDING, STARTED, INPROCESS, COMPLETE, ERROR, ...) and when it was recorded.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requestID := args[0]

		client, ctx, err := newClient()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		record, err := client.ExecutionStatus(ctx, requestID)
		if err != nil {
			cmd.Println(describeError(err))
			os.Exit(1)
		}

		printStatus(cmd, requestID, record)
	},
}

func printStatus(cmd *cobra.Command, requestID string, record *boomi.StatusRecord) {
	icon := statusIcon(record.Status)
	cmd.Printf("%s %sExecution Status%s\n", icon, colorBold, colorReset)
	cmd.Println("──────────────────────────────")

	cmd.Printf("%sRequest ID:%s  %s\n", colorDim, colorReset, requestID)
	cmd.Printf("%sStatus:%s      %s\n", colorDim, colorReset, colorizeStatus(record.Status))

	if record.Status == boomi.StatusPending {
		cmd.Printf("%sRecorded:%s    - (record not yet available)\n", colorDim, colorReset)
		return
	}

	if record.Message != "" {
		cmd.Printf("%sMessage:%s     %s\n", colorDim, colorReset, record.Message)
	}
	cmd.Printf("%sRecorded:%s    %s\n", colorDim, colorReset, formatTimeWithRelative(record.RecordedDate))
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

func statusIcon(status boomi.Status) string {
	switch status {
	case boomi.StatusComplete:
		return colorGreen + "✓" + colorReset
	case boomi.StatusCompleteWarn:
		return colorYellow + "✓" + colorReset
	case boomi.StatusError, boomi.StatusAborted, boomi.StatusDiscarded:
		return colorRed + "✗" + colorReset
	case boomi.StatusStarted, boomi.StatusInProcess:
		return colorYellow + "⏳" + colorReset
	case boomi.StatusQueued, boomi.StatusPending:
		return colorCyan + "◯" + colorReset
	default:
		return "•"
	}
}

func colorizeStatus(status boomi.Status) string {
	icon := statusIcon(status)
	switch {
	case status.Succeeded():
		return icon + " " + colorGreen + string(status) + colorReset
	case status.Terminal():
		return icon + " " + colorRed + string(status) + colorReset
	case status == boomi.StatusStarted || status == boomi.StatusInProcess:
		return icon + " " + colorYellow + string(status) + colorReset
	case status == boomi.StatusQueued || status == boomi.StatusPending:
		return icon + " " + colorCyan + string(status) + colorReset
	default:
		return string(status)
	}
}

func formatTimeWithRelative(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	relative := relativeTime(t)
	return fmt.Sprintf("%s %s(%s ago)%s", t.Format("Mon, 02 Jan 2006 15:04:05 MST"), colorDim, relative, colorReset)
}

func relativeTime(t time.Time) string {
	duration := time.Since(t)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	} else if duration < time.Hour {
		return fmt.Sprintf("%dm", int(duration.Minutes()))
	} else if duration < 24*time.Hour {
		return fmt.Sprintf("%dh", int(duration.Hours()))
	}

	days := int(duration.Hours() / 24)
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
