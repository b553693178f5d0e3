package transform

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"vincit.fi/image-transformer/api"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/backend/codec"
	"vincit.fi/image-transformer/backend/filter"
	"vincit.fi/image-transformer/common/logger"
	"vincit.fi/image-transformer/common/util"
)

const progressName = "Transforming"

// DefaultWorkers leaves one core free for the caller.
func DefaultWorkers() int {
	return util.MaxInt(1, runtime.NumCPU()-1)
}

type Pipeline struct {
	codec       codec.Codec
	threadCount int
	reporter    api.ProgressReporter
}

func NewPipeline(imageCodec codec.Codec, threadCount int, reporter api.ProgressReporter) *Pipeline {
	return &Pipeline{
		codec:       imageCodec,
		threadCount: util.MaxInt(1, threadCount),
		reporter:    reporter,
	}
}

type job struct {
	index   int
	picture *apitype.Picture
}

type jobResult struct {
	index   int
	outcome *apitype.Outcome
}

// Transform processes the selected pictures concurrently. Unselected
// pictures are not touched. The config is a copy so later changes made by
// the caller are not seen by the workers. Outcomes are in the order of the
// selected pictures. A failing picture never stops the others; when ctx is
// cancelled the pictures that have not started yet are reported as
// cancelled and keep their flags.
func (s *Pipeline) Transform(ctx context.Context, pictures []*apitype.Picture, config apitype.TransformConfig) *apitype.RunResult {
	selected := selectedPictures(pictures)
	total := len(selected)
	result := &apitype.RunResult{
		RunId:    uuid.NewString(),
		Started:  time.Now(),
		Outcomes: make([]*apitype.Outcome, total),
	}
	logger.Info.Printf("Run %s: transform %d/%d pictures (%s, %s, rotate %d) to '%s'",
		result.RunId, total, len(pictures), config.Resize, config.Format.Format, config.Rotate.Angle, config.Destination)
	s.reporter.Update(progressName, 0, total, true, false)

	if total > 0 {
		logger.Info.Printf(" * Using %d threads", s.threadCount)
		inputChannel := make(chan job, total)
		outputChannel := make(chan jobResult)

		for i, picture := range selected {
			inputChannel <- job{index: i, picture: picture}
		}
		close(inputChannel)

		var wg sync.WaitGroup
		for i := 0; i < s.threadCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := range inputChannel {
					outputChannel <- jobResult{
						index:   j.index,
						outcome: s.processPicture(ctx, j.picture, config),
					}
				}
			}()
		}
		go func() {
			wg.Wait()
			close(outputChannel)
		}()

		done := 0
		for r := range outputChannel {
			result.Outcomes[r.index] = r.outcome
			done++
			s.reporter.Update(progressName, done, total, true, false)
		}
	}

	result.Finished = time.Now()
	s.logSummary(result)
	return result
}

func (s *Pipeline) processPicture(ctx context.Context, picture *apitype.Picture, config apitype.TransformConfig) (outcome *apitype.Outcome) {
	path := picture.Path()
	outcome = &apitype.Outcome{Path: path}

	if err := ctx.Err(); err != nil {
		logger.Debug.Printf("Skip %s: %s", picture, err)
		outcome.Err = apitype.NewTransformationError(apitype.CancelledError, path, err)
		return outcome
	}

	startTime := time.Now()
	picture.MarkInProcess()
	s.reporter.PictureState(picture, nil)

	defer func() {
		picture.MarkProcessed()
		if outcome.Err != nil {
			logger.Error.Printf("Could not transform %s: %s", picture, outcome.Err)
		} else {
			logger.Debug.Printf("%s transformed in %s", picture, time.Since(startTime))
		}
		s.reporter.PictureState(picture, outcome.Err)
	}()

	stage := apitype.DecodeError
	defer func() {
		if r := recover(); r != nil {
			outcome.Err = apitype.NewTransformationError(stage, path, fmt.Errorf("panic: %v", r))
		}
	}()

	imageData, err := s.codec.Decode(path)
	if err != nil {
		outcome.Err = apitype.NewTransformationError(apitype.DecodeError, path, err)
		return outcome
	}

	stage = apitype.EncodeError
	operations, err := filter.NewOperations(picture, config, s.codec)
	if err != nil {
		outcome.Err = apitype.AsTransformationError(err, apitype.EncodeError, path)
		return outcome
	}

	group := filter.NewImageOperationGroup(picture, imageData, operations)
	if err := group.Apply(); err != nil {
		outcome.Err = apitype.AsTransformationError(err, apitype.EncodeError, path)
	} else if group.Written() {
		outcome.OutputPath = group.OutputPath()
		outcome.Checksum = group.Checksum()
	} else {
		outcome.Skipped = true
	}
	return outcome
}

func (s *Pipeline) logSummary(result *apitype.RunResult) {
	errs := result.Errors()
	logger.Info.Printf("Run %s: %d pictures in %s (%d errors)",
		result.RunId, len(result.Outcomes), result.Duration(), len(errs))
	for _, err := range errs {
		logger.Error.Printf(" - %s", err)
	}
}

func selectedPictures(pictures []*apitype.Picture) []*apitype.Picture {
	var selected []*apitype.Picture
	for _, picture := range pictures {
		if picture.IsSelected() {
			selected = append(selected, picture)
		}
	}
	return selected
}
