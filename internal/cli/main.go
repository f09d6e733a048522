package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	os.Exit(Execute(os.Args[1:], os.Stdout, os.Stderr))
}

// Execute runs the command line and returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	_ = godotenv.Load() // best-effort: load .env if present

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "takenotes <transcript.json>...",
		Short: "Compile continuity notes from diarized take transcripts",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return fmt.Errorf("requires at least 1 transcript, received 0")
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args)
		},
	}
	root.SilenceErrors = true

	root.Flags().String("config", "", "YAML config file (or TAKENOTES_CONFIG)")
	root.Flags().String("out", "", "Output directory (default: next to each input)")
	root.Flags().Float64("threshold", 4, "Silence threshold in seconds")
	root.Flags().String("suffix", "-transcript.txt", "Output file suffix")
	root.Flags().Bool("stdout", false, "Write the notes of a single input to stdout")
	root.Flags().String("log", "dev", "Log mode: dev|prod|nop")

	// Hidden tuning flag (internal)
	root.Flags().Int("workers", 4, "Transcripts compiled concurrently")
	_ = root.Flags().MarkHidden("workers")

	return root
}
