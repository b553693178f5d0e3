package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"vincit.fi/image-transformer/api/apitype"
)

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the accepted values of the transformation flags",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			printOptions(out, "format", apitype.FormatOptions)
			printOptions(out, "resize", apitype.ResizeTypeOptions)
			printOptions(out, "method", apitype.ResizeMethodOptions)
			printOptions(out, "rotate", apitype.AngleOptions)
			printOptions(out, "sort", apitype.SortFieldOptions)
		},
	}
}

func printOptions(out io.Writer, flag string, options []apitype.Option) {
	fmt.Fprintf(out, "--%s\n", flag)
	for _, option := range options {
		fmt.Fprintf(out, "  %-12s %s\n", option.Value, option.Label)
	}
}
