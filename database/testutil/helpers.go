// Package testutil builds SQLite people tables for tests.
package testutil

import (
	"database/sql"
	"testing"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/familytree/models"
)

const peopleSchema = `
CREATE TABLE IF NOT EXISTS people (
	id INTEGER PRIMARY KEY,
	position INTEGER NOT NULL,
	parent_id INTEGER,
	wbs TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	gender TEXT,
	birth_year INTEGER,
	death_year INTEGER,
	generation INTEGER,
	clan_name TEXT,
	location TEXT,
	note TEXT,
	exported_at INTEGER NOT NULL DEFAULT 0
);`

// SetupPeopleDB creates a SQLite file at path with an empty people table.
// The handle is writable and closed when the test ends.
func SetupPeopleDB(t testing.TB, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(peopleSchema)
	require.NoError(t, err)
	return db
}

// InsertPeople writes persons in slice order; position follows the slice index.
func InsertPeople(t testing.TB, db *sql.DB, persons ...*models.Person) {
	t.Helper()
	for i, p := range persons {
		sqlStr, args, err := sq.Insert("people").
			Columns("position", "id", "parent_id", "wbs", "name", "gender", "birth_year",
				"death_year", "generation", "clan_name", "location", "note").
			Values(i, p.ID, p.ParentID, p.WBS, p.Name, p.Gender, p.BirthYear, p.DeathYear,
				p.Generation, p.ClanName, p.Location, p.Note).
			ToSql()
		require.NoError(t, err)
		_, err = db.Exec(sqlStr, args...)
		require.NoError(t, err, "insert person %d", p.ID)
	}
}
