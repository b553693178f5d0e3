package api

import (
	"context"

	"vincit.fi/image-transformer/api/apitype"
)

// Controller is what a front end talks to. All setters taking a string
// accept the values of the apitype option tables and fall back to the
// defaults on anything else.
type Controller interface {
	SetSourcePath(path string) error
	SourcePath() string
	SetDestinationPath(path string) error
	DestinationPath() string
	Rescan() error
	Pictures() []*apitype.Picture

	ToggleSelection(path string) bool
	SelectAll()
	UnselectAll()
	IsAllSelected() bool
	ToggleAll()
	SelectOnly(names []string) int

	SetFormat(value string)
	SetQuality(value string)
	SetSpeed(value string)
	SetAngle(value string)
	SetResizeType(value string)
	SetResizeMethod(value string)
	SetResizeDimensions(width string, height string)
	SetFileNameAffixes(prefix string, suffix string)
	Config() apitype.TransformConfig
	ApplyPreset(config apitype.TransformConfig, sortSpec apitype.SortSpec)

	SetSortField(value string)
	ToggleSortOrder()
	SortSpec() apitype.SortSpec

	CanTransform() bool
	Transform(ctx context.Context) (*apitype.RunResult, error)
	IsInProcess() bool
	IsProcessed() bool
	Errors() []error
	ClearErrors()
}
