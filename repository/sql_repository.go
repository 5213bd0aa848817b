package repository

import (
	"database/sql"

	"github.com/cockroachdb/errors"

	"github.com/camden-git/familytree/database"
	"github.com/camden-git/familytree/logger"
	"github.com/camden-git/familytree/models"
)

// SQLFamilyRepository loads family data from the people table of a SQLite database.
// parent_id is taken as stored, so only the validator guards its consistency.
type SQLFamilyRepository struct {
	DB *sql.DB
}

// NewSQLFamilyRepository creates a new instance of SQLFamilyRepository
func NewSQLFamilyRepository(db *sql.DB) *SQLFamilyRepository {
	return &SQLFamilyRepository{DB: db}
}

// LoadFamily reads every row in source order. An empty people table is loaded
// as an empty family and reported with a warning.
func (r *SQLFamilyRepository) LoadFamily() (*models.Family, error) {
	count, err := database.CountPersons(r.DB)
	if err != nil {
		return nil, errors.Wrap(err, "failed to inspect people table")
	}
	if count == 0 {
		logger.Logger.Warnw("people table is empty", logger.FieldPersons, 0)
		return models.NewFamily(0), nil
	}

	persons, err := database.ListPersons(r.DB)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load people")
	}

	family := models.NewFamily(len(persons))
	for _, p := range persons {
		if err := family.Add(p); err != nil {
			return nil, errors.Wrapf(err, "failed to load person %d", p.ID)
		}
	}
	logger.Logger.Infow("loaded family from database", logger.FieldPersons, family.Len())
	return family, nil
}
