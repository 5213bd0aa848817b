package database

import (
	"database/sql"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"

	"github.com/camden-git/familytree/logger"
	"github.com/camden-git/familytree/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var personColumns = []string{
	"id", "parent_id", "wbs", "name", "gender", "birth_year", "death_year",
	"generation", "clan_name", "location", "note",
}

// ErrSourceNotFound is returned by OpenSourceDB when the database file does not exist.
var ErrSourceNotFound = errors.New("source database not found")

// OpenSourceDB opens an existing SQLite file read-only. A missing file is an
// error; nothing is created on disk.
func OpenSourceDB(path string) (*sql.DB, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Mark(errors.Wrapf(err, "source database %s", path), ErrSourceNotFound)
		}
		return nil, errors.Wrapf(err, "failed to stat source database %s", path)
	}
	if info.IsDir() {
		return nil, errors.Newf("source database %s is a directory", path)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}

	logger.Logger.Infow("source database opened", logger.FieldPath, path)
	return db, nil
}

// ListPersons returns all people rows in source order.
func ListPersons(db *sql.DB) ([]*models.Person, error) {
	queryBuilder := psql.Select(personColumns...).
		From("people").
		OrderBy("position ASC", "id ASC")

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for ListPersons: %w", err)
	}
	rows, err := db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute ListPersons query: %w", err)
	}
	defer rows.Close()

	persons := []*models.Person{}
	for rows.Next() {
		var (
			p                            models.Person
			parentID, birth, death, gen  sql.NullInt64
			gender, clan, location, note sql.NullString
		)
		err := rows.Scan(&p.ID, &parentID, &p.WBS, &p.Name, &gender, &birth, &death, &gen, &clan, &location, &note)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		p.ParentID = nullInt(parentID)
		p.BirthYear = nullInt(birth)
		p.DeathYear = nullInt(death)
		p.Generation = nullInt(gen)
		p.Gender = nullString(gender)
		p.ClanName = nullString(clan)
		p.Location = nullString(location)
		p.Note = nullString(note)
		persons = append(persons, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating people rows: %w", err)
	}
	return persons, nil
}

// CountPersons returns the number of people rows.
func CountPersons(db *sql.DB) (int, error) {
	sqlStr, args, err := psql.Select("COUNT(*)").From("people").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL for CountPersons: %w", err)
	}
	var n int
	if err := db.QueryRow(sqlStr, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count people: %w", err)
	}
	return n, nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
