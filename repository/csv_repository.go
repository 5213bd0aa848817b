package repository

import (
	"github.com/camden-git/familytree/genealogy"
	"github.com/camden-git/familytree/logger"
	"github.com/camden-git/familytree/models"
)

// CSVFamilyRepository loads family data from a CSV file.
type CSVFamilyRepository struct {
	Path string
}

// NewCSVFamilyRepository creates a new instance of CSVFamilyRepository
func NewCSVFamilyRepository(path string) *CSVFamilyRepository {
	return &CSVFamilyRepository{Path: path}
}

// LoadFamily parses the file; parent links are derived from the wbs column.
func (r *CSVFamilyRepository) LoadFamily() (*models.Family, error) {
	family, err := genealogy.ReadFamilyCSV(r.Path)
	if err != nil {
		return nil, err
	}
	logger.Logger.Infow("loaded family csv", logger.FieldPath, r.Path, logger.FieldPersons, family.Len())
	return family, nil
}
