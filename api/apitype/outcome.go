package apitype

import (
	"time"
)

// Outcome is the result of transforming one selected picture.
type Outcome struct {
	Path       string
	OutputPath string
	Skipped    bool
	Checksum   uint64
	Err        *TransformationError
}

func (s *Outcome) Failed() bool {
	return s != nil && s.Err != nil
}

type RunResult struct {
	RunId    string
	Started  time.Time
	Finished time.Time
	Outcomes []*Outcome
}

func (s *RunResult) Duration() time.Duration {
	return s.Finished.Sub(s.Started)
}

func (s *RunResult) Errors() []*TransformationError {
	var errs []*TransformationError
	for _, outcome := range s.Outcomes {
		if outcome.Failed() {
			errs = append(errs, outcome.Err)
		}
	}
	return errs
}

func (s *RunResult) FailedCount() int {
	return len(s.Errors())
}

func (s *RunResult) OutcomeFor(path string) *Outcome {
	for _, outcome := range s.Outcomes {
		if outcome.Path == path {
			return outcome
		}
	}
	return nil
}
