package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"quizapi/internal/model"
	"quizapi/internal/repository"
)

const (
	// DatabaseName is the database holding the question collection.
	DatabaseName = "quizDB"
	// CollectionName is the collection holding question documents.
	CollectionName = "Question"
)

// questionDocument is the BSON shape of a stored question.
type questionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Category    string             `bson:"category"`
	Text        string             `bson:"text"`
	Response    string             `bson:"response"`
	Suggestions []string           `bson:"suggestions"`
}

func (d questionDocument) toModel() model.Question {
	q := model.Question{
		Category:    d.Category,
		Text:        d.Text,
		Response:    d.Response,
		Suggestions: d.Suggestions,
	}.Mutable()
	q.ID = FormatID(d.ID)
	return q
}

// ParseID converts a QuestionID into the store's native ObjectID.
func ParseID(id model.QuestionID) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id.String())
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", repository.ErrInvalidID, id.String())
	}
	return oid, nil
}

// FormatID converts a native ObjectID into a QuestionID.
func FormatID(oid primitive.ObjectID) model.QuestionID {
	if oid.IsZero() {
		return ""
	}
	return model.QuestionID(oid.Hex())
}

// QuestionMongo is a MongoDB implementation of repository.QuestionRepository.
// The collection handle is safe for concurrent use.
type QuestionMongo struct {
	coll *mongo.Collection
}

// NewQuestionMongo creates a QuestionMongo over the given collection.
func NewQuestionMongo(coll *mongo.Collection) *QuestionMongo {
	return &QuestionMongo{coll: coll}
}

// Collection returns the question collection of the given client.
func Collection(client *mongo.Client) *mongo.Collection {
	return client.Database(DatabaseName).Collection(CollectionName)
}

var _ repository.QuestionRepository = (*QuestionMongo)(nil)

// Create inserts a new question. The zero id is omitted so the driver assigns one.
func (r *QuestionMongo) Create(ctx context.Context, q *model.Question) (model.QuestionID, error) {
	m := q.Mutable()
	doc := questionDocument{
		Category:    m.Category,
		Text:        m.Text,
		Response:    m.Response,
		Suggestions: m.Suggestions,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert question: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert question: unexpected id type %T", res.InsertedID)
	}
	return FormatID(oid), nil
}

// FindByID fetches a single question by its ID.
func (r *QuestionMongo) FindByID(ctx context.Context, id model.QuestionID) (*model.Question, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var doc questionDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find question: %w", err)
	}
	q := doc.toModel()
	return &q, nil
}

// UpdateByID sets the four mutable fields of the matching document.
func (r *QuestionMongo) UpdateByID(ctx context.Context, id model.QuestionID, q *model.Question) (int64, error) {
	oid, err := ParseID(id)
	if err != nil {
		return 0, err
	}

	m := q.Mutable()
	update := bson.M{
		"$set": bson.M{
			"category":    m.Category,
			"text":        m.Text,
			"response":    m.Response,
			"suggestions": m.Suggestions,
		},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return 0, fmt.Errorf("update question: %w", err)
	}
	return res.MatchedCount, nil
}

// DeleteByID removes the matching document.
func (r *QuestionMongo) DeleteByID(ctx context.Context, id model.QuestionID) (int64, error) {
	oid, err := ParseID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete question: %w", err)
	}
	return res.DeletedCount, nil
}

// List streams the whole collection through a cursor and collects it.
func (r *QuestionMongo) List(ctx context.Context) ([]model.Question, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]model.Question, 0)
	for cur.Next(ctx) {
		var doc questionDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode question: %w", err)
		}
		items = append(items, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return items, nil
}
