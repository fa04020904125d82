package runs

import (
	"database/sql"
	"math"
	"strconv"
	"strings"
)

// coerceFloat parses a stored value as a float. Nulls, parse failures and
// non-finite results all come back nil so they serialize as JSON null.
func coerceFloat(v sql.NullString) *float64 {
	if !v.Valid {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64)
	if err != nil {
		return nil
	}
	return sanitizeFloat(f)
}

// coerceInt parses a stored value as a float and truncates. The training
// process writes counters inconsistently, sometimes as "200.0".
func coerceInt(v sql.NullString) *int64 {
	f := coerceFloat(v)
	if f == nil {
		return nil
	}
	n := int64(*f)
	return &n
}

// sanitizeFloat maps NaN and infinities to nil; JSON has no literal for
// either.
func sanitizeFloat(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
