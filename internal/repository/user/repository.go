// Package repository stores user profiles keyed by uuid_account.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/candrasdkd/easywork/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewUserRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) ByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	const op = "repository.ByUID"

	var ent UserEntity
	if err := r.coll.FindOne(ctx, bson.M{"uuid_account": uid}).Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

// ByEmail looks up an email/password account and returns the profile together
// with its stored password hash.
func (r *repository) ByEmail(ctx context.Context, email string) (*model.UserProfile, string, error) {
	const op = "repository.ByEmail"

	var ent UserEntity
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", model.ErrProfileNotFound
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), ent.PasswordHash, nil
}

// Upsert merges the profile into the stored document, creating it on first
// sign-in. Only the given fields are written; an existing password hash and
// created_at survive.
func (r *repository) Upsert(ctx context.Context, profile model.UserProfile) error {
	const op = "repository.Upsert"

	now := time.Now()
	set := bson.M{
		"uuid_account":   profile.UID,
		"email":          profile.Email,
		"email_verified": profile.EmailVerified,
		"last_login":     now,
	}
	if profile.DisplayName != "" {
		set["display_name"] = profile.DisplayName
	}
	if profile.PICName != "" {
		set["pic_name"] = profile.PICName
	}
	if profile.PhotoURL != "" {
		set["photo_url"] = profile.PhotoURL
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": now},
	}

	_, err := r.coll.UpdateOne(ctx, bson.M{"uuid_account": profile.UID}, update,
		options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CreateEmailAccount registers a new email/password profile.
func (r *repository) CreateEmailAccount(ctx context.Context, profile model.UserProfile, passwordHash string) error {
	const op = "repository.CreateEmailAccount"

	count, err := r.coll.CountDocuments(ctx, bson.M{"email": profile.Email})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count > 0 {
		return model.ErrEmailTaken
	}

	now := time.Now()
	ent := UserEntity{
		ID:            bson.NewObjectID(),
		UID:           profile.UID,
		Email:         profile.Email,
		DisplayName:   profile.DisplayName,
		PICName:       profile.PICName,
		EmailVerified: false,
		PasswordHash:  passwordHash,
		CreatedAt:     lo.ToPtr(now),
		LastLogin:     lo.ToPtr(now),
	}

	if _, err := r.coll.InsertOne(ctx, &ent); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateNames sets display_name and pic_name, preserving everything else.
func (r *repository) UpdateNames(ctx context.Context, uid, displayName, picName string) error {
	const op = "repository.UpdateNames"

	res, err := r.coll.UpdateOne(ctx, bson.M{"uuid_account": uid}, bson.M{
		"$set": bson.M{
			"display_name": displayName,
			"pic_name":     picName,
		},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrProfileNotFound
	}

	return nil
}
