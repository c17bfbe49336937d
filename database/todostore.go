package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"todovoice/models"
)

// TodoStore is the narrow persistence surface used by the handlers, so the
// storage backend can be swapped without touching call sites.
type TodoStore interface {
	All(ctx context.Context) ([]models.Todo, error)
	Insert(ctx context.Context, todo *models.Todo) (primitive.ObjectID, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Todo, error)
	ToggleComplete(ctx context.Context, id primitive.ObjectID) (*models.Todo, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ErrTodoNotFound is returned when an id does not match any stored item.
var ErrTodoNotFound = mongo.ErrNoDocuments

type MongoTodoStore struct {
	coll *mongo.Collection
}

func NewMongoTodoStore(collectionName string) *MongoTodoStore {
	return &MongoTodoStore{coll: GetCollection(collectionName)}
}

func (s *MongoTodoStore) All(ctx context.Context) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)
	// no sort, listing keeps insertion order
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *MongoTodoStore) Insert(ctx context.Context, todo *models.Todo) (primitive.ObjectID, error) {
	if todo.ID == primitive.NilObjectID {
		todo.ID = primitive.NewObjectID()
	}
	res, err := s.coll.InsertOne(ctx, todo)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *MongoTodoStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Todo, error) {
	var todo models.Todo
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *MongoTodoStore) ToggleComplete(ctx context.Context, id primitive.ObjectID) (*models.Todo, error) {
	todo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	todo.Completed = !todo.Completed
	update := bson.M{"$set": bson.M{"completed": todo.Completed}}
	if _, err = s.coll.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *MongoTodoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrTodoNotFound
	}
	return nil
}
