package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"vincit.fi/image-transformer/backend"
	"vincit.fi/image-transformer/common"
)

func newJournalCmd(params *common.Params) *cobra.Command {
	return &cobra.Command{
		Use:   "journal [run id]",
		Short: "Show the recorded runs, or the pictures of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if params.JournalPath == "" {
				return errors.New("no journal given, use --journal or " + common.EnvJournal)
			}
			services, err := backend.InitializeServices(params)
			if err != nil {
				return err
			}
			defer services.Close()

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer writer.Flush()

			if len(args) == 0 {
				runs, err := services.Journal.Runs()
				if err != nil {
					return err
				}
				fmt.Fprintln(writer, "RUN\tSTARTED\tDURATION\tFORMAT\tRESIZE\tROTATE\tPICTURES\tFAILED\tDESTINATION")
				for _, run := range runs {
					fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
						run.Id, formatTime(run.Started), run.Finished.Sub(run.Started),
						run.Format, run.Resize, run.Angle, run.PictureCount, run.FailedCount, run.Destination)
				}
				return nil
			}

			outcomes, err := services.Journal.Outcomes(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(writer, "PATH\tOUTPUT\tCHECKSUM\tERROR")
			for _, outcome := range outcomes {
				output := outcome.OutputPath
				if outcome.Skipped {
					output = "(skipped)"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", outcome.Path, output, outcome.Checksum, outcome.ErrorMessage)
			}
			return nil
		},
	}
}
