package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Timestamps leave the API as unix seconds and ids as strings.
var viewConverters = []copier.TypeConverter{
	{
		SrcType: time.Time{},
		DstType: int64(0),
		Fn: func(src any) (any, error) {
			return src.(time.Time).Unix(), nil
		},
	},
	{
		SrcType: uuid.UUID{},
		DstType: "",
		Fn: func(src any) (any, error) {
			return src.(uuid.UUID).String(), nil
		},
	},
}

func copyView(dst, src any) error {
	return copier.CopyWithOption(dst, src, copier.Option{Converters: viewConverters})
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.Unix()
	return &v
}

func uuidPtr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
