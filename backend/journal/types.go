package journal

import "time"

type Run struct {
	Id           string    `db:"id"`
	Started      time.Time `db:"started_timestamp"`
	Finished     time.Time `db:"finished_timestamp"`
	Destination  string    `db:"destination"`
	Format       string    `db:"format"`
	Resize       string    `db:"resize"`
	Angle        int       `db:"angle"`
	PictureCount int       `db:"picture_count"`
	FailedCount  int       `db:"failed_count"`
}

// OutcomeRecord is one picture of a run. The checksum is stored as hex
// because sqlite integers are signed.
type OutcomeRecord struct {
	Id           int64  `db:"id,omitempty"`
	RunId        string `db:"run_id"`
	Path         string `db:"path"`
	OutputPath   string `db:"output_path"`
	Skipped      bool   `db:"skipped"`
	Checksum     string `db:"checksum"`
	ErrorKind    string `db:"error_kind"`
	ErrorMessage string `db:"error_message"`
}

func (s *OutcomeRecord) Failed() bool {
	return s.ErrorKind != ""
}
