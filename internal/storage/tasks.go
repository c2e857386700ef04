package storage

import (
	"github.com/shazzad098/career-ai-os/internal/models"
)

func (s *Store) CreateTask(task *models.Task) error {
	return s.db.Create(task).Error
}

func (s *Store) TaskByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &task, nil
}

func (s *Store) TasksByOwner(ownerID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("user_id = ?", ownerID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CompleteTask flips the completed flag. There is no uncomplete path.
func (s *Store) CompleteTask(id uint) error {
	res := s.db.Model(&models.Task{}).Where("id = ?", id).Update("completed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
