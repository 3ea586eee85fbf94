package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roomdesk/booking-api/internal/core/domain"
)

const roomTypesCollection = "room_types"

// RoomTypeRepository implements ports.RoomTypeRepository backed by MongoDB.
type RoomTypeRepository struct {
	coll *mongo.Collection
}

func NewRoomTypeRepository(db *mongo.Database) *RoomTypeRepository {
	return &RoomTypeRepository{coll: db.Collection(roomTypesCollection)}
}

type roomTypeDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d roomTypeDoc) toDomain() *domain.RoomType {
	return &domain.RoomType{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	doc := roomTypeDoc{
		Name:      rt.Name,
		CreatedAt: rt.CreatedAt,
		UpdatedAt: rt.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoomTypeExists
		}
		return nil, fmt.Errorf("insert room type: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *RoomTypeRepository) FindByID(ctx context.Context, id string) (*domain.RoomType, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc roomTypeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("find room type: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RoomTypeRepository) FindByName(ctx context.Context, name string) (*domain.RoomType, error) {
	var doc roomTypeDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("find room type by name: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RoomTypeRepository) List(ctx context.Context) ([]*domain.RoomType, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}
	defer cur.Close(ctx)

	var types []*domain.RoomType
	for cur.Next(ctx) {
		var doc roomTypeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode room type: %w", err)
		}
		types = append(types, doc.toDomain())
	}
	return types, cur.Err()
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	oid, err := parseID(rt.ID)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": rt.Name, "updated_at": rt.UpdatedAt}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoomTypeExists
		}
		return nil, fmt.Errorf("update room type: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRoomTypeNotFound
	}
	return rt, nil
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete room type: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomTypeNotFound
	}
	return nil
}

// EnsureIndexes creates the unique name index.
func (r *RoomTypeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
