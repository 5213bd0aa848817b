package repository

import (
	"github.com/camden-git/familytree/models"
)

// FamilyRepository loads the full id -> Person mapping for one session.
// Implementations return the records as stored; validation is the caller's job.
type FamilyRepository interface {
	LoadFamily() (*models.Family, error)
}

// SnapshotRepository persists a validated family outside the query session.
type SnapshotRepository interface {
	SaveFamily(family *models.Family) error
}
