package todos

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	todosCollection    = "todos"
	countersCollection = "counters"
	todoSequence       = "todos"
)

// MongoStore keeps todos in MongoDB. Ids come from a counter document so they stay integers.
type MongoStore struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

type counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		collection: db.Collection(todosCollection),
		counters:   db.Collection(countersCollection),
	}
}

// EnsureIndexes creates the lookup indexes. It is safe to call on every start.
func (r *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}},
	})
	return err
}

func (r *MongoStore) ListByOwner(ctx context.Context, username string) ([]Todo, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"username": username})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var todos []Todo
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, err
	}

	if todos == nil {
		todos = []Todo{}
	}

	return todos, nil
}

func (r *MongoStore) GetByID(ctx context.Context, id int64) (*Todo, error) {
	var todo Todo
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound(id)
		}
		return nil, err
	}

	return &todo, nil
}

func (r *MongoStore) Save(ctx context.Context, todo *Todo) (*Todo, error) {
	if todo.IsNew() {
		id, err := r.nextID(ctx)
		if err != nil {
			return nil, fmt.Errorf("allocate todo id: %w", err)
		}
		todo.ID = id
	} else if err := r.reserveID(ctx, todo.ID); err != nil {
		return nil, fmt.Errorf("reserve todo id: %w", err)
	}

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": todo.ID},
		todo,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}

	out := *todo
	return &out, nil
}

func (r *MongoStore) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return notFound(id)
	}

	return nil
}

// nextID atomically bumps the todo sequence and returns the new value.
func (r *MongoStore) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counter
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": todoSequence},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.Seq, nil
}

// reserveID moves the sequence past an explicitly supplied id.
func (r *MongoStore) reserveID(ctx context.Context, id int64) error {
	_, err := r.counters.UpdateOne(
		ctx,
		bson.M{"_id": todoSequence},
		bson.M{"$max": bson.M{"seq": id}},
		options.Update().SetUpsert(true),
	)
	return err
}
