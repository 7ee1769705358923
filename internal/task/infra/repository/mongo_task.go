package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	domaintask "github.com/KasumiMercury/primind-task-api/internal/task/domain/task"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const TaskCollection = "tasks"

type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description *string            `bson:"description,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type mongoTaskRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewMongoTaskRepository stores tasks in coll, normally the TaskCollection
// of the configured database.
func NewMongoTaskRepository(coll *mongo.Collection) domaintask.TaskRepository {
	return &mongoTaskRepository{
		collection: coll,
		now:        time.Now,
	}
}

// EnsureMongoIndexes creates the status index used by filtered listing.
func EnsureMongoIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("idx_tasks_status"),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domaintask.ErrPersistence, err)
	}

	return nil
}

func (r *mongoTaskRepository) CreateTask(ctx context.Context, task *domaintask.Task) (*domaintask.Task, error) {
	if task == nil {
		return nil, ErrTaskRequired
	}

	if task.IsPersisted() {
		return nil, ErrTaskAlreadyPersisted
	}

	now := r.now().UTC().Truncate(time.Millisecond)
	doc := taskDocument{
		ID:          primitive.NewObjectID(),
		Title:       task.Title(),
		Description: task.Description(),
		Status:      string(task.TaskStatus()),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domaintask.ErrPersistence, err)
	}

	return doc.toDomain()
}

// ListTasks returns tasks in insertion order. Object ids start with their
// creation second, so sorting by _id keeps that order without a second key.
func (r *mongoTaskRepository) ListTasks(ctx context.Context, filter domaintask.Filter) ([]*domaintask.Task, error) {
	query := bson.M{}
	if status, ok := filter.TaskStatus(); ok {
		query["status"] = string(status)
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domaintask.ErrPersistence, err)
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", domaintask.ErrPersistence, err)
	}

	tasks := make([]*domaintask.Task, 0, len(docs))

	for _, doc := range docs {
		task, err := doc.toDomain()
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *mongoTaskRepository) GetTaskByID(ctx context.Context, id domaintask.ID) (*domaintask.Task, error) {
	var doc taskDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": primitive.ObjectID(id)}).Decode(&doc); err != nil {
		return nil, mapMongoError(err)
	}

	return doc.toDomain()
}

// UpdateTaskByID applies the update atomically and returns the stored result.
// An empty update is a read, so updatedAt does not move.
func (r *mongoTaskRepository) UpdateTaskByID(ctx context.Context, id domaintask.ID, update domaintask.Update) (*domaintask.Task, error) {
	if update.IsEmpty() {
		return r.GetTaskByID(ctx, id)
	}

	set := bson.M{"updatedAt": r.now().UTC().Truncate(time.Millisecond)}

	if title := update.Title(); title != nil {
		set["title"] = *title
	}

	if description := update.Description(); description != nil {
		set["description"] = *description
	}

	if status := update.TaskStatus(); status != nil {
		set["status"] = string(*status)
	}

	var doc taskDocument

	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": primitive.ObjectID(id)},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, mapMongoError(err)
	}

	return doc.toDomain()
}

func (r *mongoTaskRepository) DeleteTaskByID(ctx context.Context, id domaintask.ID) (*domaintask.Task, error) {
	var doc taskDocument
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": primitive.ObjectID(id)}).Decode(&doc); err != nil {
		return nil, mapMongoError(err)
	}

	return doc.toDomain()
}

func (d taskDocument) toDomain() (*domaintask.Task, error) {
	status, err := domaintask.NewStatus(d.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", domaintask.ErrPersistence, ErrCorruptedRecord, err)
	}

	task, err := domaintask.NewTask(domaintask.ID(d.ID), d.Title, d.Description, status, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", domaintask.ErrPersistence, ErrCorruptedRecord, err)
	}

	return task, nil
}

func mapMongoError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domaintask.ErrTaskNotFound
	}

	return fmt.Errorf("%w: %w", domaintask.ErrPersistence, err)
}
