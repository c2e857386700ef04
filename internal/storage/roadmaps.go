package storage

import (
	"errors"

	"github.com/shazzad098/career-ai-os/internal/models"
)

func (s *Store) RoadmapByID(id uint) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	if err := s.db.First(&roadmap, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &roadmap, nil
}

// RoadmapByOwner returns the owner's roadmap, or ErrNotFound. The schema
// permits many rows per owner but the application keeps one; first-found by
// id is "the" roadmap.
func (s *Store) RoadmapByOwner(ownerID uint) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	err := s.db.Where("user_id = ?", ownerID).Order("id").First(&roadmap).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return &roadmap, nil
}

func (s *Store) RoadmapsByOwner(ownerID uint) ([]models.Roadmap, error) {
	var roadmaps []models.Roadmap
	if err := s.db.Where("user_id = ?", ownerID).Order("id").Find(&roadmaps).Error; err != nil {
		return nil, err
	}
	return roadmaps, nil
}

// UpsertRoadmap records a successful generation. An existing roadmap keeps
// its row id and is overwritten in place; otherwise a new row is inserted.
func (s *Store) UpsertRoadmap(ownerID uint, title, content string) (*models.Roadmap, error) {
	roadmap, err := s.RoadmapByOwner(ownerID)
	if errors.Is(err, ErrNotFound) {
		roadmap = &models.Roadmap{
			Title:   title,
			Content: content,
			Status:  models.RoadmapStatusOK,
			UserID:  ownerID,
		}
		if err := s.db.Create(roadmap).Error; err != nil {
			return nil, err
		}
		return roadmap, nil
	}
	if err != nil {
		return nil, err
	}

	roadmap.Title = title
	roadmap.Content = content
	roadmap.Status = models.RoadmapStatusOK
	roadmap.FailureReason = ""
	if err := s.db.Save(roadmap).Error; err != nil {
		return nil, err
	}
	return roadmap, nil
}

// MarkRoadmapFailed records a failed generation without destroying any
// previously generated content.
func (s *Store) MarkRoadmapFailed(ownerID uint, title, reason string) (*models.Roadmap, error) {
	roadmap, err := s.RoadmapByOwner(ownerID)
	if errors.Is(err, ErrNotFound) {
		roadmap = &models.Roadmap{
			Title:         title,
			Status:        models.RoadmapStatusFailed,
			FailureReason: reason,
			UserID:        ownerID,
		}
		if err := s.db.Create(roadmap).Error; err != nil {
			return nil, err
		}
		return roadmap, nil
	}
	if err != nil {
		return nil, err
	}

	roadmap.Status = models.RoadmapStatusFailed
	roadmap.FailureReason = reason
	if err := s.db.Save(roadmap).Error; err != nil {
		return nil, err
	}
	return roadmap, nil
}
