package cmd

import (
	"github.com/spf13/cobra"
	"vincit.fi/image-transformer/backend"
	"vincit.fi/image-transformer/backend/watcher"
	"vincit.fi/image-transformer/common"
	"vincit.fi/image-transformer/common/logger"
)

func newWatchCmd(params *common.Params) *cobra.Command {
	transforming := &transformFlags{}
	sorting := &sortFlags{}

	cmd := &cobra.Command{
		Use:   "watch <source> [destination]",
		Short: "Keep the catalog of a folder up to date, optionally transforming on every change",
		Args:  cobra.RangeArgs(1, 2),
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
			transformOnChange := len(args) == 2
			if transformOnChange {
				if err := controller.SetDestinationPath(args[1]); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			update := func() {
				if err := controller.Rescan(); err != nil {
					return
				}
				printPictures(cmd.OutOrStdout(), controller.Pictures())
				if transformOnChange {
					if result, err := controller.Transform(ctx); err != nil {
						logger.Warn.Printf("Transform skipped: %s", err)
					} else {
						printResult(cmd.OutOrStdout(), result)
					}
				}
			}

			folderWatcher, err := watcher.NewWatcher(args[0], watcher.DefaultDebounce, update)
			if err != nil {
				return err
			}
			defer folderWatcher.Close()

			update()
			folderWatcher.Run(ctx)
			return nil
		},
	}

	transforming.bind(cmd)
	sorting.bind(cmd)
	return cmd
}
