package repository_book

import (
	"context"

	"github.com/Super-Badmen-Viper/BookRec/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 以 bson 往返模拟驱动解码，仅覆盖 repository 用到的方法
type fakeDatabase struct {
	collections map[string]*fakeCollection
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{collections: make(map[string]*fakeCollection)}
}

func (d *fakeDatabase) Collection(name string) mongo.Collection {
	c, ok := d.collections[name]
	if !ok {
		c = &fakeCollection{}
		d.collections[name] = c
	}
	return c
}

func (d *fakeDatabase) Client() mongo.Client { return nil }

type fakeCollection struct {
	docs       []interface{}
	findErr    error
	cursorErr  error // 非空时游标返回首个文档后中断
	lastFilter interface{}
	lastOpts   []*options.FindOptions
	bulkModels []mongo.BulkModel
}

func (c *fakeCollection) FindOne(_ context.Context, filter interface{}) mongo.SingleResult {
	c.lastFilter = filter
	if c.findErr != nil {
		return fakeSingleResult{err: c.findErr}
	}
	if len(c.docs) == 0 {
		return fakeSingleResult{err: mongo.ErrNoDocuments}
	}
	return fakeSingleResult{doc: c.docs[0]}
}

func (c *fakeCollection) InsertOne(context.Context, interface{}) (interface{}, error) {
	return nil, nil
}

func (c *fakeCollection) Find(_ context.Context, filter interface{}, opts ...*options.FindOptions) (mongo.Cursor, error) {
	c.lastFilter = filter
	c.lastOpts = opts
	if c.findErr != nil {
		return nil, c.findErr
	}
	return &fakeCursor{docs: c.docs, pos: -1, err: c.cursorErr}, nil
}

func (c *fakeCollection) Indexes() mongo.IndexView { return nil }

func (c *fakeCollection) BulkWrite() mongo.BulkWrite { return &fakeBulk{coll: c} }

type fakeBulk struct {
	coll   *fakeCollection
	models []mongo.BulkModel
}

func (b *fakeBulk) AddModel(models ...mongo.BulkModel) { b.models = append(b.models, models...) }

func (b *fakeBulk) Execute(context.Context) (mongo.BulkWriteResult, error) {
	b.coll.bulkModels = append(b.coll.bulkModels, b.models...)
	return fakeBulkResult{upserted: int64(len(b.models))}, nil
}

type fakeBulkResult struct{ upserted int64 }

func (r fakeBulkResult) MatchedCount() int64  { return 0 }
func (r fakeBulkResult) ModifiedCount() int64 { return 0 }
func (r fakeBulkResult) UpsertedCount() int64 { return r.upserted }

type fakeSingleResult struct {
	doc interface{}
	err error
}

func (r fakeSingleResult) Decode(v interface{}) error {
	if r.err != nil {
		return r.err
	}
	return roundTrip(r.doc, v)
}

type fakeCursor struct {
	docs []interface{}
	pos  int
	err  error
}

func (c *fakeCursor) Close(context.Context) error { return nil }

func (c *fakeCursor) Next(context.Context) bool {
	c.pos++
	if c.err != nil && c.pos > 0 {
		return false
	}
	return c.pos < len(c.docs)
}

func (c *fakeCursor) Decode(v interface{}) error { return roundTrip(c.docs[c.pos], v) }

func (c *fakeCursor) All(context.Context, interface{}) error { return nil }

func (c *fakeCursor) Err() error {
	if c.pos >= 0 {
		return c.err
	}
	return nil
}

func roundTrip(doc, v interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, v)
}
