package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type InventoryEntity struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	UserID       string        `bson:"user_id"`
	ToolName     string        `bson:"tool_name"`
	BrandName    string        `bson:"brand_name"`
	TypeName     string        `bson:"type_name"`
	SerialNumber string        `bson:"serial_number"`
	RoomName     string        `bson:"room_name"`
	Satuan       string        `bson:"satuan,omitempty"`
	// Stored as entered: a number, or "" when the field was cleared.
	Jumlah             any        `bson:"jumlah"`
	KondisiBaik        bool       `bson:"kondisi_baik"`
	KondisiRR          bool       `bson:"kondisi_rr"`
	KondisiRB          bool       `bson:"kondisi_rb"`
	PersonResponsible  string     `bson:"person_responsible"`
	Catatan            string     `bson:"catatan,omitempty"`
	ImplementationDate *time.Time `bson:"implementation_date,omitempty"`
}
