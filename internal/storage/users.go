package storage

import (
	"github.com/shazzad098/career-ai-os/internal/models"
)

// CreateUser inserts a new account. Username and email collisions come back
// as *DuplicateIdentityError.
func (s *Store) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if dup := duplicateErr(err); dup != nil {
			return dup
		}
		return err
	}
	return nil
}

func (s *Store) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (s *Store) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (s *Store) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

// UpdateUser saves profile mutations. Uniqueness still applies when the
// username or email changed.
func (s *Store) UpdateUser(user *models.User) error {
	if err := s.db.Save(user).Error; err != nil {
		if dup := duplicateErr(err); dup != nil {
			return dup
		}
		return err
	}
	return nil
}
