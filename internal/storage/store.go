package storage

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shazzad098/career-ai-os/internal/models"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("record not found")

// DuplicateIdentityError reports a username or email collision at insert or
// update time. Field names the offending column.
type DuplicateIdentityError struct {
	Field string
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// Store gives each entity explicit query methods over one gorm handle. There
// is no bidirectional object graph; relations are walked by foreign key.
type Store struct {
	db *gorm.DB
}

// New migrates the schema and returns a ready Store.
func New(db *gorm.DB) (*Store, error) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Roadmap{},
		&models.Task{},
		&models.Progress{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

// duplicateErr maps a driver unique-violation error to a
// DuplicateIdentityError, or returns nil when err is unrelated.
// Postgres says `duplicate key value violates unique constraint
// "uni_users_username"`; sqlite says `UNIQUE constraint failed:
// users.username`.
func duplicateErr(err error) *DuplicateIdentityError {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "unique") {
		return nil
	}
	switch {
	case strings.Contains(msg, "username"):
		return &DuplicateIdentityError{Field: "username"}
	case strings.Contains(msg, "email"):
		return &DuplicateIdentityError{Field: "email"}
	default:
		return &DuplicateIdentityError{Field: "identity"}
	}
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
