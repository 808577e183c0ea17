package ledger

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"SKCCTracker/internal/model"
)

// SQLiteLedger reads contacts from the logger's SQLite database. The award
// engine only ever selects; the logging frontend owns all writes.
type SQLiteLedger struct {
	db *sql.DB
}

// NewSQLiteLedger opens the logger database and ensures the contacts table
// exists, so a fresh install evaluates to zero progress instead of erroring.
func NewSQLiteLedger(dbPath string) (*SQLiteLedger, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so the logging frontend can write while we read.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	l := &SQLiteLedger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite ledger opened: %s", dbPath)
	return l, nil
}

func (l *SQLiteLedger) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS contacts (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			callsign         TEXT NOT NULL,
			qso_date         TEXT NOT NULL,
			time_on          TEXT,
			mode             TEXT,
			band             TEXT,
			skcc_number      TEXT,
			key_type         TEXT,
			duration_minutes INTEGER,
			power_watts      REAL,
			distance_miles   REAL,
			distance_nm      REAL,
			state            TEXT,
			country          TEXT,
			continent        TEXT,
			dxcc_entity      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_date ON contacts(qso_date)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_skcc ON contacts(skcc_number)`,
	}

	for _, s := range stmts {
		if _, err := l.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// AllContacts loads the full log ordered by QSO date. Award evaluation is a
// fold over the whole log, so there is no point paging.
func (l *SQLiteLedger) AllContacts() ([]model.Contact, error) {
	rows, err := l.db.Query(`SELECT
		callsign, qso_date, time_on, mode, band, skcc_number, key_type,
		duration_minutes, power_watts, distance_miles, distance_nm,
		state, country, continent, dxcc_entity
		FROM contacts ORDER BY qso_date, time_on`)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		var timeOn, mode, band, skcc, key, state, country, continent sql.NullString
		var duration, dxcc sql.NullInt64
		var power, miles, nm sql.NullFloat64

		if err := rows.Scan(&c.Callsign, &c.Date, &timeOn, &mode, &band, &skcc, &key,
			&duration, &power, &miles, &nm,
			&state, &country, &continent, &dxcc); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}

		c.TimeOn = timeOn.String
		c.Mode = mode.String
		c.Band = band.String
		c.SKCCNumber = skcc.String
		c.KeyType = model.KeyType(key.String)
		c.DurationMinutes = int(duration.Int64)
		c.PowerWatts = power.Float64
		c.DistanceMiles = miles.Float64
		c.DistanceNM = nm.Float64
		c.State = state.String
		c.Country = country.String
		c.Continent = continent.String
		c.DXCCEntity = int(dxcc.Int64)
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

func (l *SQLiteLedger) Close() error {
	return l.db.Close()
}
