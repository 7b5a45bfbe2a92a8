package metrics

import (
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// The ClickHouse driver scans aggregate columns into a mix of Go types:
// uniq/count come back as uint64, toHour as uint8, sums over Decimal64
// columns as decimal.Decimal, Nullable columns as pointers. The helpers
// below fold all of that into the metric result's scalar kinds; nil (or a
// nil pointer) coalesces to the zero value.

const dateLayout = "2006-01-02"

func asInt64(v any) int64 {
	switch value := indirect(v).(type) {
	case nil:
		return 0
	case int64:
		return value
	case int:
		return int64(value)
	case int8:
		return int64(value)
	case int16:
		return int64(value)
	case int32:
		return int64(value)
	case uint:
		return int64(value)
	case uint8:
		return int64(value)
	case uint16:
		return int64(value)
	case uint32:
		return int64(value)
	case uint64:
		return int64(value)
	case float32:
		return int64(value)
	case float64:
		return int64(value)
	case decimal.Decimal:
		return value.IntPart()
	default:
		return 0
	}
}

func asFloat64(v any) float64 {
	switch value := indirect(v).(type) {
	case nil:
		return 0.0
	case float64:
		return value
	case float32:
		return float64(value)
	case int64:
		return float64(value)
	case int:
		return float64(value)
	case int32:
		return float64(value)
	case uint64:
		return float64(value)
	case uint32:
		return float64(value)
	case decimal.Decimal:
		f, _ := value.Float64()
		return f
	default:
		return 0.0
	}
}

func asString(v any) string {
	switch value := indirect(v).(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return ""
	}
}

// asDate renders a date column as YYYY-MM-DD.
func asDate(v any) string {
	switch value := indirect(v).(type) {
	case nil:
		return ""
	case time.Time:
		return value.Format(dateLayout)
	case string:
		return value
	default:
		return ""
	}
}

// indirect unwraps pointer-typed column values, mapping nil pointers to
// nil.
func indirect(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return v
	}
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}
