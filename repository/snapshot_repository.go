package repository

import (
	"time"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/camden-git/familytree/logger"
	"github.com/camden-git/familytree/models"
)

const snapshotBatchSize = 500

// GormSnapshotRepository writes a validated family into the people table.
type GormSnapshotRepository struct {
	DB *gorm.DB
}

// NewGormSnapshotRepository creates a new instance of GormSnapshotRepository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{DB: db}
}

// SaveFamily replaces the table contents with family in one transaction.
// Row positions follow the family's insertion order.
func (r *GormSnapshotRepository) SaveFamily(family *models.Family) error {
	now := time.Now().Unix()
	records := make([]models.PersonRecord, 0, family.Len())
	for i, p := range family.Persons() {
		records = append(records, models.NewPersonRecord(p, i, now))
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.PersonRecord{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear people table")
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, snapshotBatchSize).Error; err != nil {
			return errors.Wrap(err, "failed to insert people")
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Logger.Infow("saved family snapshot", logger.FieldPersons, len(records))
	return nil
}

// CountRecords returns the number of stored rows.
func (r *GormSnapshotRepository) CountRecords() (int64, error) {
	var n int64
	if err := r.DB.Model(&models.PersonRecord{}).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count people")
	}
	return n, nil
}
