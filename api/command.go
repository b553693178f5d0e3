package api

import "vincit.fi/image-transformer/api/apitype"

type ErrorCommand struct {
	Message string

	apitype.NotThrottled
}

type UpdateProgressCommand struct {
	Name      string
	Current   int
	Total     int
	CanCancel bool
	Modal     bool

	apitype.Throttled
}

type PictureStateCommand struct {
	Path  string
	State apitype.PictureState
	Err   *apitype.TransformationError

	apitype.NotThrottled
}

type CatalogUpdatedCommand struct {
	Source   string
	Pictures int

	apitype.NotThrottled
}

type TransformFinishedCommand struct {
	Result *apitype.RunResult

	apitype.NotThrottled
}
