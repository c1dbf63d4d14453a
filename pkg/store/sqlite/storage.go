package sqlite

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

const ReportRunsSchema = `
	CREATE TABLE IF NOT EXISTS report_runs (
		id TEXT NOT NULL PRIMARY KEY,
		source_file TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		total_items INTEGER NOT NULL,
		alta_count INTEGER NOT NULL,
		media_count INTEGER NOT NULL,
		baja_count INTEGER NOT NULL,
		report_json TEXT NOT NULL
	);
`

var bootQueries = []string{
	ReportRunsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", settings.DbPath)
	if err != nil {
		return nil, err
	}
	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}
