package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/backend"
	"vincit.fi/image-transformer/common"
)

const timeLayout = "2006-01-02 15:04:05"

func newListCmd(params *common.Params) *cobra.Command {
	sorting := &sortFlags{}

	cmd := &cobra.Command{
		Use:   "list <source>",
		Short: "List the pictures of a folder with their metadata",
		Example: `  # Largest files first
  image-transformer list ~/Pictures --sort weight --desc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := backend.InitializeServices(params)
			if err != nil {
				return err
			}
			defer services.Close()

			controller := services.Controller
			sorting.apply(cmd, controller)
			if err := controller.SetSourcePath(args[0]); err != nil {
				return err
			}
			printPictures(cmd.OutOrStdout(), controller.Pictures())
			return nil
		},
	}
	sorting.bind(cmd)
	return cmd
}

func printPictures(out io.Writer, pictures []*apitype.Picture) {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tSIZE\tWEIGHT\tORIENTATION\tCREATED\tMODIFIED\tACCESSED")
	for _, picture := range pictures {
		metadata := picture.Metadata()
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			picture.Name(),
			picture.SizeLabel(),
			picture.WeightLabel(),
			metadata.Orientation,
			formatTime(metadata.Created),
			formatTime(metadata.Modified),
			formatTime(metadata.Accessed),
		)
	}
	writer.Flush()
	fmt.Fprintf(out, "%d pictures\n", len(pictures))
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format(timeLayout)
}
