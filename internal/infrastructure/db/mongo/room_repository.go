package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roomdesk/booking-api/internal/core/domain"
	"github.com/roomdesk/booking-api/internal/core/ports"
)

const roomsCollection = "rooms"

// RoomRepository implements ports.RoomRepository backed by MongoDB.
type RoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{coll: db.Collection(roomsCollection)}
}

type roomDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	RoomTypeID primitive.ObjectID `bson:"room_type_id"`
	Price      float64            `bson:"price"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d roomDoc) toDomain() *domain.Room {
	return &domain.Room{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		RoomTypeID: d.RoomTypeID.Hex(),
		Price:      d.Price,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	typeID, err := parseID(room.RoomTypeID)
	if err != nil {
		return nil, err
	}

	doc := roomDoc{
		Name:       room.Name,
		RoomTypeID: typeID,
		Price:      room.Price,
		CreatedAt:  room.CreatedAt,
		UpdatedAt:  room.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert room: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc roomDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns rooms matching the filter. All filter fields are optional
// and combine with AND semantics.
func (r *RoomRepository) List(ctx context.Context, filter ports.RoomFilter) ([]*domain.Room, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["name"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if filter.RoomTypeID != "" {
		typeID, err := parseID(filter.RoomTypeID)
		if err != nil {
			return nil, err
		}
		query["room_type_id"] = typeID
	}
	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer cur.Close(ctx)

	var rooms []*domain.Room
	for cur.Next(ctx) {
		var doc roomDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode room: %w", err)
		}
		rooms = append(rooms, doc.toDomain())
	}
	return rooms, cur.Err()
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	oid, err := parseID(room.ID)
	if err != nil {
		return nil, err
	}
	typeID, err := parseID(room.RoomTypeID)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":         room.Name,
			"room_type_id": typeID,
			"price":        room.Price,
			"updated_at":   room.UpdatedAt,
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) CountByRoomType(ctx context.Context, roomTypeID string) (int64, error) {
	typeID, err := parseID(roomTypeID)
	if err != nil {
		return 0, err
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"room_type_id": typeID})
	if err != nil {
		return 0, fmt.Errorf("count rooms by type: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates secondary indexes used by the list filters.
func (r *RoomRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "room_type_id", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
