package repository_book

import (
	"context"
	"errors"
	"testing"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/Super-Badmen-Viper/BookRec/domain/domain_book/book_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository_GetByID(t *testing.T) {
	db := newFakeDatabase()
	id := primitive.NewObjectID()
	db.Collection(domain.CollectionUser).(*fakeCollection).docs = []interface{}{
		book_models.User{ID: id, Name: "reader", MainCollection: []book_models.CollectionEntry{{BookID: "dune"}}},
	}

	user, err := NewUserRepository(db).GetByID(context.Background(), id.Hex())
	require.NoError(t, err)
	entry, ok := user.MostRecentRead()
	assert.True(t, ok)
	assert.Equal(t, "dune", entry.BookID)
}

func TestUserRepository_InvalidOrMissingID(t *testing.T) {
	repo := NewUserRepository(newFakeDatabase())

	_, err := repo.GetByID(context.Background(), "not-hex")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookReadRepository_GetReadBookIDs(t *testing.T) {
	db := newFakeDatabase()
	coll := db.Collection(domain.CollectionBookRead).(*fakeCollection)
	coll.docs = []interface{}{
		book_models.BookRead{UserID: "u1", BookID: "a"},
		book_models.BookRead{UserID: "u1", BookID: "b"},
	}

	read, err := NewBookReadRepository(db).GetReadBookIDs(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}}, read)
}

func TestBookReadRepository_GetReadBookIDsCursorError(t *testing.T) {
	db := newFakeDatabase()
	coll := db.Collection(domain.CollectionBookRead).(*fakeCollection)
	coll.docs = []interface{}{
		book_models.BookRead{UserID: "u1", BookID: "a"},
		book_models.BookRead{UserID: "u1", BookID: "b"},
	}
	coll.cursorErr = errors.New("connection reset")

	read, err := NewBookReadRepository(db).GetReadBookIDs(context.Background(), "u1")
	assert.Nil(t, read, "a truncated read history must not be returned")
	assert.ErrorContains(t, err, "connection reset")
}
