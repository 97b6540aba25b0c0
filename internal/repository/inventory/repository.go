package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/candrasdkd/easywork/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewInventoryRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) ListMonth(ctx context.Context, q model.MonthQuery) ([]model.InventoryRecord, error) {
	const op = "repository.ListMonth"

	opts := options.Find().
		SetSort(bson.D{{Key: "implementation_date", Value: SortDirection(q.Order)}})

	cur, err := r.coll.Find(ctx, BuildMonthFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			log.Printf("%s failed to close cursor: %s", op, cerr)
		}
	}()

	out := make([]model.InventoryRecord, 0)
	for cur.Next(ctx) {
		var ent InventoryEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, *EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) ByID(ctx context.Context, id string) (*model.InventoryRecord, error) {
	const op = "repository.ByID"

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrRecordNotFound
	}

	var ent InventoryEntity
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrRecordNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) Create(ctx context.Context, rec model.InventoryRecord) (model.InventoryRecord, error) {
	const op = "repository.Create"

	rec.ID = ""
	ent, err := EntityFromModel(&rec)
	if err != nil {
		return model.InventoryRecord{}, fmt.Errorf("%s: %w", op, err)
	}
	ent.ID = bson.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		return model.InventoryRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	rec.ID = ent.ID.Hex()
	return rec, nil
}

func (r *repository) Replace(ctx context.Context, rec model.InventoryRecord) error {
	const op = "repository.Replace"

	ent, err := EntityFromModel(&rec)
	if err != nil {
		return model.ErrRecordNotFound
	}
	if ent.ID.IsZero() {
		return model.ErrRecordNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": ent.ID}, ent)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrRecordNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.Delete"

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrRecordNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrRecordNotFound
	}

	return nil
}
