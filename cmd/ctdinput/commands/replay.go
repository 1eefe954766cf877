package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/ctdinput/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Run a YAML input script and print the callback trace",
	Example: `  ctdinput replay testdata/click.yaml
  ctdinput replay --double-click-speed 0.25 --verbose script.yaml
  CTDINPUT_KEY_REPEAT_RATE=0.05 ctdinput replay script.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := newViper(cmd.Flags())
		if err != nil {
			return err
		}
		cfg, err := effectiveConfig(v)
		if err != nil {
			return err
		}
		logger, err := newLogger(v)
		if err != nil {
			return err
		}

		script, err := replay.Load(args[0])
		if err != nil {
			return err
		}
		entries, err := replay.Run(script, replay.Options{
			Config:  cfg,
			Logger:  logger,
			Verbose: v.GetBool("verbose"),
		})
		fmt.Fprint(cmd.OutOrStdout(), replay.Format(entries))
		return err
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolP("verbose", "v", false, "also trace cursor updates and redraws")
}
