package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/candrasdkd/easywork/internal/model"
)

func EntityToModel(e *CalibrationEntity) *model.CalibrationRecord {
	if e == nil {
		return nil
	}

	return &model.CalibrationRecord{
		ID:                 e.ID.Hex(),
		UserID:             e.UserID,
		ToolName:           e.ToolName,
		BrandName:          e.BrandName,
		TypeName:           e.TypeName,
		SerialNumber:       e.SerialNumber,
		RoomName:           e.RoomName,
		Capacity:           e.Capacity,
		LevelOfAccuracy:    e.LevelOfAccuracy,
		LabelNumber:        e.LabelNumber,
		PersonResponsible:  e.PersonResponsible,
		Catatan:            e.Catatan,
		ImplementationDate: e.ImplementationDate,
	}
}

// EntityFromModel converts for writes. The identifier is mapped separately
// because a create has none yet.
func EntityFromModel(r *model.CalibrationRecord) (*CalibrationEntity, error) {
	if r == nil {
		return nil, nil
	}

	out := &CalibrationEntity{
		UserID:             r.UserID,
		ToolName:           r.ToolName,
		BrandName:          r.BrandName,
		TypeName:           r.TypeName,
		SerialNumber:       r.SerialNumber,
		RoomName:           r.RoomName,
		Capacity:           r.Capacity,
		LevelOfAccuracy:    r.LevelOfAccuracy,
		LabelNumber:        r.LabelNumber,
		PersonResponsible:  r.PersonResponsible,
		Catatan:            r.Catatan,
		ImplementationDate: r.ImplementationDate,
	}

	if r.ID != "" {
		oid, err := bson.ObjectIDFromHex(r.ID)
		if err != nil {
			return nil, err
		}
		out.ID = oid
	}

	return out, nil
}

// BuildMonthFilter scopes a query to one calendar month of one user's
// records; the user clause is dropped for an all-users query.
func BuildMonthFilter(q model.MonthQuery) bson.M {
	start, end := q.Month.Bounds()

	f := bson.M{
		"implementation_date": bson.M{"$gte": start, "$lte": end},
	}
	if !q.AllUsers {
		f["user_id"] = q.UserID
	}
	return f
}

func SortDirection(order model.SortOrder) int {
	if order == model.SortAsc {
		return 1
	}
	return -1
}
