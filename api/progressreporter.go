package api

import "vincit.fi/image-transformer/api/apitype"

type ProgressReporter interface {
	Update(name string, current int, total int, canCancel bool, modal bool)
	PictureState(picture *apitype.Picture, err *apitype.TransformationError)
}

type SenderProgressReporter struct {
	sender Sender

	ProgressReporter
}

func NewSenderProgressReporter(sender Sender) ProgressReporter {
	return SenderProgressReporter{
		sender: sender,
	}
}

func (s SenderProgressReporter) Update(name string, current int, total int, canCancel bool, modal bool) {
	s.sender.SendCommandToTopic(ProcessStatusUpdated, &UpdateProgressCommand{
		Name:      name,
		Current:   current,
		Total:     total,
		CanCancel: canCancel,
		Modal:     modal,
	})
}

func (s SenderProgressReporter) PictureState(picture *apitype.Picture, err *apitype.TransformationError) {
	s.sender.SendCommandToTopic(PictureStateUpdated, &PictureStateCommand{
		Path:  picture.Path(),
		State: picture.State(),
		Err:   err,
	})
}
