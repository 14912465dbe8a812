package database

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// Decode copies rec into out (a pointer to struct) using `db` tags.
func Decode(rec Record, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "db",
		Squash:           true,
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			decimalHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
		),
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(rec)); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}

// DecodeOne decodes a single record into a new T.
func DecodeOne[T any](rec Record) (*T, error) {
	out := new(T)
	if err := Decode(rec, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeAll decodes every record, preserving order. The result is never nil.
func DecodeAll[T any](recs []Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		var item T
		if err := Decode(rec, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// decimalHook turns NUMERIC values into decimal.Decimal. pgx's database/sql
// driver hands NUMERIC over as a string.
func decimalHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != decimalType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return decimal.NewFromString(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	}
	return data, nil
}
