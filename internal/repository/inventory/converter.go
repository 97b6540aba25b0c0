package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/candrasdkd/easywork/internal/model"
)

func EntityToModel(e *InventoryEntity) *model.InventoryRecord {
	if e == nil {
		return nil
	}

	return &model.InventoryRecord{
		ID:                 e.ID.Hex(),
		UserID:             e.UserID,
		ToolName:           e.ToolName,
		BrandName:          e.BrandName,
		TypeName:           e.TypeName,
		SerialNumber:       e.SerialNumber,
		RoomName:           e.RoomName,
		Satuan:             e.Satuan,
		Jumlah:             model.QuantityFromStored(e.Jumlah),
		KondisiBaik:        e.KondisiBaik,
		KondisiRR:          e.KondisiRR,
		KondisiRB:          e.KondisiRB,
		PersonResponsible:  e.PersonResponsible,
		Catatan:            e.Catatan,
		ImplementationDate: e.ImplementationDate,
	}
}

func EntityFromModel(r *model.InventoryRecord) (*InventoryEntity, error) {
	if r == nil {
		return nil, nil
	}

	out := &InventoryEntity{
		UserID:             r.UserID,
		ToolName:           r.ToolName,
		BrandName:          r.BrandName,
		TypeName:           r.TypeName,
		SerialNumber:       r.SerialNumber,
		RoomName:           r.RoomName,
		Satuan:             r.Satuan,
		Jumlah:             r.Jumlah.StoredValue(),
		KondisiBaik:        r.KondisiBaik,
		KondisiRR:          r.KondisiRR,
		KondisiRB:          r.KondisiRB,
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
