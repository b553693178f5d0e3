package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"vincit.fi/image-transformer/api"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/backend"
	"vincit.fi/image-transformer/common"
	"vincit.fi/image-transformer/common/logger"
)

func newRunCmd(params *common.Params) *cobra.Command {
	transforming := &transformFlags{}
	sorting := &sortFlags{}
	var only []string

	cmd := &cobra.Command{
		Use:   "run <source> <destination>",
		Short: "Transform the pictures of a folder into another folder",
		Example: `  # Convert everything to WebP at quality 80
  image-transformer run ~/Pictures /tmp/out --format webp --quality 80

  # Thumbnails of two pictures, rotated a quarter turn clockwise
  image-transformer run ~/Pictures /tmp/thumbs --resize thumbnail --width 320 --height 320 \
      --rotate 90 --only a.jpg,b.jpg --suffix _thumb`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := backend.InitializeServices(params)
			if err != nil {
				return err
			}
			defer services.Close()

			controller := services.Controller
			transforming.apply(cmd, controller)
			sorting.apply(cmd, controller)

			if err := controller.SetSourcePath(args[0]); err != nil {
				return err
			}
			if err := controller.SetDestinationPath(args[1]); err != nil {
				return err
			}
			if len(only) > 0 {
				selected := controller.SelectOnly(only)
				logger.Info.Printf("Selected %d of %d pictures", selected, len(controller.Pictures()))
			}

			printProgress := func(command *api.UpdateProgressCommand) {
				logger.Info.Printf("%s %d/%d", command.Name, command.Current, command.Total)
			}
			if err := services.Broker.Subscribe(api.ProcessStatusUpdated, printProgress); err != nil {
				return err
			}
			defer services.Broker.Unsubscribe(api.ProcessStatusUpdated, printProgress)

			result, err := controller.Transform(cmd.Context())
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)

			if failed := result.FailedCount(); failed > 0 {
				return fmt.Errorf("%d of %d pictures failed", failed, len(result.Outcomes))
			}
			return nil
		},
	}

	transforming.bind(cmd)
	sorting.bind(cmd)
	cmd.Flags().StringSliceVar(&only, "only", nil, "Comma separated file names to transform, all pictures when not given")
	return cmd
}

func printResult(out io.Writer, result *apitype.RunResult) {
	for _, outcome := range result.Outcomes {
		if outcome.Failed() {
			fmt.Fprintf(out, "FAILED   %s: %s\n", outcome.Path, outcome.Err)
		} else if outcome.Skipped {
			fmt.Fprintf(out, "SKIPPED  %s\n", outcome.Path)
		} else {
			fmt.Fprintf(out, "OK       %s -> %s (%016x)\n", outcome.Path, outcome.OutputPath, outcome.Checksum)
		}
	}
	fmt.Fprintf(out, "Run %s: %d pictures in %s, %d failed\n",
		result.RunId, len(result.Outcomes), result.Duration(), result.FailedCount())
}
