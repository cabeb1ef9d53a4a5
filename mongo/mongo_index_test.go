package mongo

import (
	"context"
	"testing"

	"github.com/Super-Badmen-Viper/BookRec/domain"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type indexRecorder struct {
	created  map[string][]string
	existing map[string][]*mongo.IndexSpecification
}

func newIndexRecorder() *indexRecorder {
	return &indexRecorder{
		created:  make(map[string][]string),
		existing: make(map[string][]*mongo.IndexSpecification),
	}
}

func (r *indexRecorder) Collection(name string) Collection {
	return &recordingCollection{name: name, rec: r}
}

func (r *indexRecorder) Client() Client { return nil }

type recordingCollection struct {
	Collection
	name string
	rec  *indexRecorder
}

func (c *recordingCollection) Indexes() IndexView { return c }

func (c *recordingCollection) CreateOne(_ context.Context, model mongo.IndexModel) (string, error) {
	name := *model.Options.Name
	c.rec.created[c.name] = append(c.rec.created[c.name], name)
	return name, nil
}

func (c *recordingCollection) ListSpecifications(context.Context) ([]*mongo.IndexSpecification, error) {
	return c.rec.existing[c.name], nil
}

func TestCreateIndexes(t *testing.T) {
	rec := newIndexRecorder()
	CreateIndexes(rec, zap.NewNop())

	assert.Equal(t, []string{"book_id", "title", BookTextIndex}, rec.created[domain.CollectionBook])
	assert.Equal(t, []string{"user_id", "user_book_compound"}, rec.created[domain.CollectionBookRead])
	assert.NotContains(t, rec.created, domain.CollectionUser, "users collection indexes are owned elsewhere")
}

func TestCreateIndexes_TextIndexAlreadyPresent(t *testing.T) {
	rec := newIndexRecorder()
	rec.existing[domain.CollectionBook] = []*mongo.IndexSpecification{{Name: BookTextIndex}}
	CreateIndexes(rec, zap.NewNop())

	assert.Equal(t, []string{"book_id", "title"}, rec.created[domain.CollectionBook])
}
