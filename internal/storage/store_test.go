package storage_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shazzad098/career-ai-os/internal/models"
	"github.com/shazzad098/career-ai-os/internal/storage"
)

func setupStore(t *testing.T) *storage.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store, err := storage.New(db)
	require.NoError(t, err)
	return store
}

func createUser(t *testing.T, store *storage.Store, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, PasswordHash: "x"}
	require.NoError(t, store.CreateUser(user))
	return user
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	store := setupStore(t)
	createUser(t, store, "alice", "a@x.com")

	err := store.CreateUser(&models.User{Username: "alice", Email: "other@x.com", PasswordHash: "x"})
	var dup *storage.DuplicateIdentityError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "username", dup.Field)

	// the second row must not exist
	_, err = store.UserByEmail("other@x.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := setupStore(t)
	createUser(t, store, "alice", "a@x.com")

	err := store.CreateUser(&models.User{Username: "bob", Email: "a@x.com", PasswordHash: "x"})
	var dup *storage.DuplicateIdentityError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "email", dup.Field)
}

func TestUpsertRoadmapKeepsRowIdentity(t *testing.T) {
	store := setupStore(t)
	user := createUser(t, store, "alice", "a@x.com")

	first, err := store.UpsertRoadmap(user.ID, "Data Scientist Roadmap", "plan v1")
	require.NoError(t, err)

	second, err := store.UpsertRoadmap(user.ID, "DevOps Engineer Roadmap", "plan v2")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "DevOps Engineer Roadmap", second.Title)
	assert.Equal(t, "plan v2", second.Content)

	roadmaps, err := store.RoadmapsByOwner(user.ID)
	require.NoError(t, err)
	assert.Len(t, roadmaps, 1)
}

func TestMarkRoadmapFailedPreservesContent(t *testing.T) {
	store := setupStore(t)
	user := createUser(t, store, "alice", "a@x.com")

	_, err := store.UpsertRoadmap(user.ID, "Data Scientist Roadmap", "good plan")
	require.NoError(t, err)

	failed, err := store.MarkRoadmapFailed(user.ID, "Data Scientist Roadmap", "service unavailable")
	require.NoError(t, err)
	assert.True(t, failed.Failed())
	assert.Equal(t, "service unavailable", failed.FailureReason)
	assert.Equal(t, "good plan", failed.Content)

	// a later success clears the failure state
	ok, err := store.UpsertRoadmap(user.ID, "Data Scientist Roadmap", "better plan")
	require.NoError(t, err)
	assert.False(t, ok.Failed())
	assert.Empty(t, ok.FailureReason)
	assert.Equal(t, "better plan", ok.Content)
}

func TestMarkRoadmapFailedWithoutPriorRoadmap(t *testing.T) {
	store := setupStore(t)
	user := createUser(t, store, "alice", "a@x.com")

	failed, err := store.MarkRoadmapFailed(user.ID, "Cloud Architect Roadmap", "timeout")
	require.NoError(t, err)
	assert.True(t, failed.Failed())
	assert.Empty(t, failed.Content)
}

func TestUpsertProgressSingleRowPerSkill(t *testing.T) {
	store := setupStore(t)
	user := createUser(t, store, "alice", "a@x.com")

	_, err := store.UpsertProgress(user.ID, "Python", 5, "ok")
	require.NoError(t, err)
	_, err = store.UpsertProgress(user.ID, "Python", 8, "better")
	require.NoError(t, err)

	rows, err := store.ProgressByOwner(user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Python", rows[0].Skill)
	assert.Equal(t, 8, rows[0].Level)
	assert.Equal(t, "better", rows[0].Notes)
}

func TestUpsertProgressSeparateOwners(t *testing.T) {
	store := setupStore(t)
	alice := createUser(t, store, "alice", "a@x.com")
	bob := createUser(t, store, "bob", "b@x.com")

	_, err := store.UpsertProgress(alice.ID, "Python", 5, "")
	require.NoError(t, err)
	_, err = store.UpsertProgress(bob.ID, "Python", 3, "")
	require.NoError(t, err)

	aliceRows, err := store.ProgressByOwner(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceRows, 1)
	assert.Equal(t, 5, aliceRows[0].Level)
}

func TestCompleteTask(t *testing.T) {
	store := setupStore(t)
	user := createUser(t, store, "alice", "a@x.com")

	task := &models.Task{Title: "Learn SQL", UserID: user.ID}
	require.NoError(t, store.CreateTask(task))

	require.NoError(t, store.CompleteTask(task.ID))

	got, err := store.TaskByID(task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestCompleteTaskMissing(t *testing.T) {
	store := setupStore(t)
	assert.ErrorIs(t, store.CompleteTask(9999), storage.ErrNotFound)
}
