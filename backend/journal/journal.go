package journal

import (
	"fmt"

	"github.com/upper/db/v4"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/common/logger"
)

// Journal keeps a history of transformation runs.
type Journal struct {
	database *Database
}

func NewJournal(database *Database) *Journal {
	return &Journal{
		database: database,
	}
}

func (s *Journal) runCollection(session db.Session) db.Collection {
	return session.Collection("run")
}

func (s *Journal) outcomeCollection(session db.Session) db.Collection {
	return session.Collection("outcome")
}

// AddRun stores the run and all its outcomes in one transaction.
func (s *Journal) AddRun(result *apitype.RunResult, config apitype.TransformConfig) error {
	logger.Debug.Printf("Journal run %s with %d outcomes", result.RunId, len(result.Outcomes))
	return s.database.Session().Tx(func(session db.Session) error {
		if _, err := s.runCollection(session).Insert(&Run{
			Id:           result.RunId,
			Started:      result.Started,
			Finished:     result.Finished,
			Destination:  config.Destination,
			Format:       config.Format.Format.String(),
			Resize:       config.Resize.String(),
			Angle:        int(config.Rotate.Angle),
			PictureCount: len(result.Outcomes),
			FailedCount:  result.FailedCount(),
		}); err != nil {
			return err
		}

		collection := s.outcomeCollection(session)
		for _, outcome := range result.Outcomes {
			if _, err := collection.Insert(toOutcomeRecord(result.RunId, outcome)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Journal) Runs() ([]*Run, error) {
	var runs []*Run
	err := s.runCollection(s.database.Session()).Find().
		OrderBy("started_timestamp").
		All(&runs)
	return runs, err
}

func (s *Journal) Run(runId string) (*Run, error) {
	var run Run
	if err := s.runCollection(s.database.Session()).Find(db.Cond{"id": runId}).One(&run); err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *Journal) Outcomes(runId string) ([]*OutcomeRecord, error) {
	var outcomes []*OutcomeRecord
	err := s.outcomeCollection(s.database.Session()).Find(db.Cond{"run_id": runId}).
		OrderBy("id").
		All(&outcomes)
	return outcomes, err
}

func toOutcomeRecord(runId string, outcome *apitype.Outcome) *OutcomeRecord {
	record := &OutcomeRecord{
		RunId:      runId,
		Path:       outcome.Path,
		OutputPath: outcome.OutputPath,
		Skipped:    outcome.Skipped,
	}
	if outcome.Checksum != 0 {
		record.Checksum = fmt.Sprintf("%016x", outcome.Checksum)
	}
	if outcome.Err != nil {
		record.ErrorKind = outcome.Err.Kind.String()
		record.ErrorMessage = outcome.Err.Error()
	}
	return record
}
