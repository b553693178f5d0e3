package cmd

import (
	"github.com/spf13/cobra"
	"vincit.fi/image-transformer/common"
	"vincit.fi/image-transformer/common/logger"
)

type globalFlags struct {
	logLevel   string
	workers    int
	presetPath string
	journal    string
}

func NewRootCmd() *cobra.Command {
	params := common.NewParams()
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "image-transformer",
		Short: "Batch resize, rotate and re-encode a folder of pictures",
		Long: `image-transformer scans a folder of pictures, lets you pick the ones to
process and writes resized, rotated and re-encoded copies to another folder.

Supported inputs: jpg, jpeg, png, webp, avif, tiff.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadParams(cmd, params, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	cmd.PersistentFlags().IntVar(&flags.workers, "workers", 0, "Number of parallel workers (0 = number of CPUs - 1)")
	cmd.PersistentFlags().StringVar(&flags.presetPath, "config", "", "YAML preset file with the transformation settings")
	cmd.PersistentFlags().StringVar(&flags.journal, "journal", "", "Record every run into this sqlite file")

	cmd.AddCommand(newListCmd(params))
	cmd.AddCommand(newRunCmd(params))
	cmd.AddCommand(newWatchCmd(params))
	cmd.AddCommand(newOptionsCmd())
	cmd.AddCommand(newJournalCmd(params))

	return cmd
}

// loadParams layers the environment, the preset file and the flags that
// were given on top of the defaults.
func loadParams(cmd *cobra.Command, params *common.Params, flags *globalFlags) error {
	params.LoadEnv()

	changed := cmd.Flags().Changed
	if changed("log-level") {
		params.LogLevel = flags.logLevel
	}
	if changed("workers") {
		params.Workers = flags.workers
	}
	if changed("journal") {
		params.JournalPath = flags.journal
	}
	logger.Initialize(logger.StringToLogLevel(params.LogLevel))

	if flags.presetPath != "" {
		return params.LoadPresetFile(flags.presetPath)
	}
	return nil
}
