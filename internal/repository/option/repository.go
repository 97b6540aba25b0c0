// Package repository stores the autocomplete option lists (tools, brands,
// rooms, units), one collection per kind. Options are append-only.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/candrasdkd/easywork/internal/model"
)

type OptionEntity struct {
	ID   bson.ObjectID `bson:"_id,omitempty"`
	Name string        `bson:"name"`
}

type repository struct {
	db    *mongo.Database
	colls map[model.OptionKind]string
}

func NewOptionRepository(db *mongo.Database, collections map[model.OptionKind]string) *repository {
	return &repository{db: db, colls: collections}
}

func (r *repository) collection(kind model.OptionKind) (*mongo.Collection, error) {
	name, ok := r.colls[kind]
	if !ok {
		return nil, fmt.Errorf("no collection for option kind %q: %w", kind, model.ErrInvalidArgument)
	}
	return r.db.Collection(name), nil
}

// List returns every option of the kind, ordered by name.
func (r *repository) List(ctx context.Context, kind model.OptionKind) ([]model.Option, error) {
	const op = "repository.List"

	coll, err := r.collection(kind)
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			log.Printf("%s failed to close cursor: %s", op, cerr)
		}
	}()

	out := make([]model.Option, 0)
	for cur.Next(ctx) {
		var ent OptionEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, model.Option{ID: ent.ID.Hex(), Name: ent.Name})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

// Append adds a new option. An existing name (case-insensitive) is returned
// as-is instead of duplicated.
func (r *repository) Append(ctx context.Context, kind model.OptionKind, name string) (model.Option, error) {
	const op = "repository.Append"

	name = strings.TrimSpace(name)
	if name == "" {
		return model.Option{}, fmt.Errorf("option name must be non-empty: %w", model.ErrInvalidArgument)
	}

	coll, err := r.collection(kind)
	if err != nil {
		return model.Option{}, err
	}

	var existing OptionEntity
	err = coll.FindOne(ctx, bson.M{
		"name": bson.M{"$regex": "^" + escapeRegex(name) + "$", "$options": "i"},
	}).Decode(&existing)
	if err == nil {
		return model.Option{ID: existing.ID.Hex(), Name: existing.Name}, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return model.Option{}, fmt.Errorf("%s: %w", op, err)
	}

	ent := OptionEntity{ID: bson.NewObjectID(), Name: name}
	if _, err := coll.InsertOne(ctx, ent); err != nil {
		return model.Option{}, fmt.Errorf("%s: %w", op, err)
	}

	return model.Option{ID: ent.ID.Hex(), Name: ent.Name}, nil
}

func escapeRegex(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`, `.`, `\.`, `+`, `\+`, `*`, `\*`, `?`, `\?`,
		`(`, `\(`, `)`, `\)`, `[`, `\[`, `]`, `\]`, `{`, `\{`, `}`, `\}`,
		`^`, `\^`, `$`, `\$`, `|`, `\|`,
	)
	return replacer.Replace(s)
}
