package journal

import (
	"fmt"
	"path/filepath"

	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
	"vincit.fi/image-transformer/common/logger"
	"vincit.fi/image-transformer/common/util"
)

type TableExist int

const (
	TableNotExist TableExist = iota
	TableExists
)

type Database struct {
	session db.Session
	dbPath  string
}

// NewDatabase opens or creates the sqlite file at dbPath and brings its
// schema up to date.
func NewDatabase(dbPath string) (*Database, error) {
	if err := util.MakeDirectoriesIfNotExist(filepath.Dir(dbPath)); err != nil {
		return nil, err
	}

	logger.Info.Printf("Initializing database %s", dbPath)
	var settings = sqlite.ConnectionURL{
		Database: dbPath,
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return nil, err
	}

	database := &Database{session: session, dbPath: dbPath}

	var version map[string]interface{}
	if err := session.SQL().Select(db.Func("sqlite_version")).One(&version); err == nil {
		logger.Info.Printf("Database initialized. Using SQLite version %s", version["sqlite_version()"])
	}

	if _, err := database.Migrate(); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

func (s *Database) Migrate() (TableExist, error) {
	logger.Debug.Printf("Running migrations")
	tablesExists := s.doesTablesExists()

	if !tablesExists {
		logger.Info.Print("Initial databases don't exist. Creating...")
		err := s.session.Tx(func(session db.Session) error {
			_, err := session.SQL().Exec(`
				CREATE TABLE migration (
					id TEXT PRIMARY KEY
				)
			`)
			return err
		})

		if err != nil {
			return TableNotExist, fmt.Errorf("create migration table: %w", err)
		}
	}

	if err := s.migrate(); err != nil {
		return TableNotExist, fmt.Errorf("run migrations: %w", err)
	}
	logger.Debug.Print("All migrations done")

	if tablesExists {
		return TableExists, nil
	} else {
		return TableNotExist, nil
	}
}

func (s *Database) doesTablesExists() bool {
	rows, err := s.session.SQL().Query(`
		SELECT name FROM sqlite_master WHERE type='table' AND name= 'migration';
	`)

	if err != nil {
		return false
	}

	defer rows.Close()
	return rows.Next()
}

func (s *Database) Session() db.Session {
	return s.session
}

func (s *Database) Path() string {
	return s.dbPath
}

func (s *Database) migrate() error {
	return s.session.Tx(func(session db.Session) error {
		if migrationStatusesById, err := s.findAlreadyRunMigrations(session); err != nil {
			return err
		} else {
			for _, migration := range migrations {
				if err := s.runMigration(session, migration, migrationStatusesById); err != nil {
					logger.Error.Print("Failed to run migration ", err)
					return err
				}
			}
			return nil
		}
	})
}

func (s *Database) runMigration(session db.Session, migration migration, migrationStatusesById map[MigrationId]bool) error {
	migrationId := migration.id

	if _, found := migrationStatusesById[migrationId]; found {
		logger.Debug.Printf("Migration %d is already done", migrationId)
		return nil
	}

	if _, err := session.SQL().Exec(`INSERT INTO migration (id) VALUES (?)`, migrationId); err != nil {
		return err
	}

	logger.Info.Printf("Running migration %d: %s", migration.id, migration.description)
	_, err := session.SQL().Exec(migration.query)
	return err
}

func (s *Database) findAlreadyRunMigrations(session db.Session) (map[MigrationId]bool, error) {
	var runMigrationIds []Migration
	if err := session.Collection("migration").Find().All(&runMigrationIds); err != nil {
		return nil, err
	} else {
		var migrationStatusesById = map[MigrationId]bool{}
		for _, migration := range runMigrationIds {
			migrationStatusesById[migration.Id] = true
		}
		return migrationStatusesById, nil
	}
}

func (s *Database) Close() {
	logger.Debug.Printf("Closing database %s", s.dbPath)
	if s.session != nil {
		if err := s.session.Close(); err != nil {
			logger.Error.Print("Error while trying to close database ", err)
		}
	} else {
		logger.Warn.Printf("No database instance to close")
	}
}
