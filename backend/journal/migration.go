package journal

type MigrationId int64

type Migration struct {
	Id MigrationId `db:"id"`
}

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          0,
		description: "Initial Tables",
		query: `
			CREATE TABLE run (
			    id TEXT PRIMARY KEY,
			    started_timestamp DATETIME,
			    finished_timestamp DATETIME,
			    destination TEXT,
			    format TEXT,
			    resize TEXT,
			    angle INT,
			    picture_count INT,
			    failed_count INT
			);

			CREATE TABLE outcome (
			    id INTEGER PRIMARY KEY,
			    run_id TEXT,
			    path TEXT,
			    output_path TEXT,
			    skipped INT,
			    checksum TEXT,
			    error_kind TEXT,
			    error_message TEXT,

			    FOREIGN KEY(run_id) REFERENCES run(id) ON DELETE CASCADE
			);

			CREATE INDEX run_started_timestamp_idx ON run (started_timestamp);
			CREATE INDEX outcome_run_id_idx ON outcome (run_id);
		`,
	},
}
