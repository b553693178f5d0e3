package api

type Topic string

const (
	ProcessStatusUpdated Topic = "process-status-updated"
	PictureStateUpdated  Topic = "picture-state-updated"
	CatalogUpdated       Topic = "catalog-updated"
	TransformFinished    Topic = "transform-finished"
	ShowError            Topic = "show-error"
)
