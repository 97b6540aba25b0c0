package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CalibrationEntity struct {
	ID                 bson.ObjectID `bson:"_id,omitempty"`
	UserID             string        `bson:"user_id"`
	ToolName           string        `bson:"tool_name"`
	BrandName          string        `bson:"brand_name"`
	TypeName           string        `bson:"type_name"`
	SerialNumber       string        `bson:"serial_number"`
	RoomName           string        `bson:"room_name"`
	Capacity           string        `bson:"capacity,omitempty"`
	LevelOfAccuracy    string        `bson:"level_of_accuracy,omitempty"`
	LabelNumber        string        `bson:"label_number,omitempty"`
	PersonResponsible  string        `bson:"person_responsible"`
	Catatan            string        `bson:"catatan,omitempty"`
	ImplementationDate *time.Time    `bson:"implementation_date,omitempty"`
}
