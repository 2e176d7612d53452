package memory

import (
	"testing"

	"dr-dine-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository()
	session := store.NewSession("abc")
	session.FoodItems = "Rice, Dal"

	repo.Save(session)

	got, found := repo.Get("abc")
	assert.True(t, found)
	assert.Equal(t, "Rice, Dal", got.FoodItems)
	assert.Equal(t, store.PageFoodInput, got.Page)
}

func TestSessionRepositoryMiss(t *testing.T) {
	repo := NewSessionRepository()

	_, found := repo.Get("missing")
	assert.False(t, found)
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionRepository()
	repo.Save(store.NewSession("abc"))

	repo.Delete("abc")

	_, found := repo.Get("abc")
	assert.False(t, found)
}
