package storage

import (
	"errors"

	"github.com/shazzad098/career-ai-os/internal/models"
)

func (s *Store) ProgressByOwner(ownerID uint) ([]models.Progress, error) {
	var progress []models.Progress
	if err := s.db.Where("user_id = ?", ownerID).Order("skill").Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

// UpsertProgress keeps exactly one row per (owner, skill): level and notes
// are updated in place when the pair already exists.
func (s *Store) UpsertProgress(ownerID uint, skill string, level int, notes string) (*models.Progress, error) {
	var progress models.Progress
	err := mapErr(s.db.Where("user_id = ? AND skill = ?", ownerID, skill).First(&progress).Error)
	if errors.Is(err, ErrNotFound) {
		progress = models.Progress{
			Skill:  skill,
			Level:  level,
			Notes:  notes,
			UserID: ownerID,
		}
		if err := s.db.Create(&progress).Error; err != nil {
			return nil, err
		}
		return &progress, nil
	}
	if err != nil {
		return nil, err
	}

	progress.Level = level
	progress.Notes = notes
	if err := s.db.Save(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}
