package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"vincit.fi/image-transformer/api"
	"vincit.fi/image-transformer/api/apitype"
)

func optionValues(options []apitype.Option) string {
	values := make([]string, len(options))
	for i, option := range options {
		values[i] = option.Value
	}
	return strings.Join(values, ", ")
}

type sortFlags struct {
	field      string
	descending bool
}

func (s *sortFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.field, "sort", "name", "Sort by: "+optionValues(apitype.SortFieldOptions))
	cmd.Flags().BoolVar(&s.descending, "desc", false, "Sort in descending order")
}

// apply only touches the settings whose flag was given so that the preset
// values stay otherwise.
func (s *sortFlags) apply(cmd *cobra.Command, controller api.Controller) {
	if cmd.Flags().Changed("sort") {
		controller.SetSortField(s.field)
	}
	if cmd.Flags().Changed("desc") {
		isDescending := controller.SortSpec().Order == apitype.Descending
		if isDescending != s.descending {
			controller.ToggleSortOrder()
		}
	}
}

type transformFlags struct {
	format  string
	quality string
	speed   string
	resize  string
	method  string
	width   string
	height  string
	rotate  string
	prefix  string
	suffix  string
}

func (s *transformFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&s.format, "format", "none", "Output format: "+optionValues(apitype.FormatOptions))
	flags.StringVar(&s.quality, "quality", "75", "Quality for lossy formats (0-100)")
	flags.StringVar(&s.speed, "speed", "7", "AVIF encoder speed (1-10, lower is slower and smaller)")
	flags.StringVar(&s.resize, "resize", "none", "Resize mode: "+optionValues(apitype.ResizeTypeOptions))
	flags.StringVar(&s.method, "method", "lanczos3", "Resize filter: "+optionValues(apitype.ResizeMethodOptions))
	flags.StringVar(&s.width, "width", "0", "Target width in pixels")
	flags.StringVar(&s.height, "height", "0", "Target height in pixels (exact resize uses this for both dimensions)")
	flags.StringVar(&s.rotate, "rotate", "none", "Rotate clockwise after the Exif orientation fix: "+optionValues(apitype.AngleOptions))
	flags.StringVar(&s.prefix, "prefix", "", "Prefix for output file names")
	flags.StringVar(&s.suffix, "suffix", "", "Suffix for output file names")
}

func (s *transformFlags) apply(cmd *cobra.Command, controller api.Controller) {
	changed := cmd.Flags().Changed
	if changed("format") {
		controller.SetFormat(s.format)
	}
	if changed("quality") {
		controller.SetQuality(s.quality)
	}
	if changed("speed") {
		controller.SetSpeed(s.speed)
	}
	if changed("resize") {
		controller.SetResizeType(s.resize)
	}
	if changed("method") {
		controller.SetResizeMethod(s.method)
	}
	if changed("width") || changed("height") {
		config := controller.Config()
		width, height := s.width, s.height
		if !changed("width") {
			width = dimensionString(config.Resize.Width)
		}
		if !changed("height") {
			height = dimensionString(config.Resize.Height)
		}
		controller.SetResizeDimensions(width, height)
	}
	if changed("rotate") {
		controller.SetAngle(s.rotate)
	}
	if changed("prefix") || changed("suffix") {
		config := controller.Config()
		prefix, suffix := config.NamePrefix, config.NameSuffix
		if changed("prefix") {
			prefix = s.prefix
		}
		if changed("suffix") {
			suffix = s.suffix
		}
		controller.SetFileNameAffixes(prefix, suffix)
	}
}

func dimensionString(value uint32) string {
	return strconv.FormatUint(uint64(value), 10)
}
