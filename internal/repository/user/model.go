package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/candrasdkd/easywork/internal/model"
)

// UserEntity is the stored profile. PasswordHash is only present on accounts
// registered with email and password; Google accounts never carry one.
type UserEntity struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	UID           string        `bson:"uuid_account"`
	Email         string        `bson:"email"`
	DisplayName   string        `bson:"display_name,omitempty"`
	PICName       string        `bson:"pic_name,omitempty"`
	PhotoURL      string        `bson:"photo_url,omitempty"`
	EmailVerified bool          `bson:"email_verified"`
	PasswordHash  string        `bson:"password_hash,omitempty"`
	CreatedAt     *time.Time    `bson:"created_at,omitempty"`
	LastLogin     *time.Time    `bson:"last_login,omitempty"`
}

func EntityToModel(e *UserEntity) *model.UserProfile {
	if e == nil {
		return nil
	}

	return &model.UserProfile{
		UID:           e.UID,
		Email:         e.Email,
		DisplayName:   e.DisplayName,
		PICName:       e.PICName,
		PhotoURL:      e.PhotoURL,
		EmailVerified: e.EmailVerified,
		CreatedAt:     e.CreatedAt,
		LastLogin:     e.LastLogin,
	}
}
