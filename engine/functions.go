package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/viant/ripley/point"
	sqlite "modernc.org/sqlite"
)

// RegisterFunctions registers ripley_dist2 and ripley_within with the
// driver so they are available on new connections opened after this call.
// Note: existing open connections will not see new functions.
func RegisterFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("ripley_dist2", 4, dist2Impl)
	_ = sqlite.RegisterDeterministicScalarFunction("ripley_within", 5, withinImpl)
	return nil
}

func asFloat(name string, arg driver.Value) (float64, bool, error) {
	switch v := arg.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case int64:
		return float64(v), true, nil
	default:
		return 0, false, fmt.Errorf("%s: unsupported argument type %T; want REAL", name, arg)
	}
}

func floatArgs(name string, args []driver.Value, want int) ([]float64, bool, error) {
	if len(args) != want {
		return nil, false, fmt.Errorf("%s: expected %d arguments, got %d", name, want, len(args))
	}
	out := make([]float64, want)
	for i, arg := range args {
		v, ok, err := asFloat(name, arg)
		if err != nil || !ok {
			return nil, false, err
		}
		out[i] = v
	}
	return out, true, nil
}

// ripley_dist2(x1, y1, x2, y2) returns the squared Euclidean distance.
func dist2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	v, ok, err := floatArgs("ripley_dist2", args, 4)
	if err != nil || !ok {
		return nil, err
	}
	return point.New(v[0], v[1]).Dist2(point.New(v[2], v[3])), nil
}

// ripley_within(x, y, cx, cy, r) returns 1 when (x, y) is in the closed
// ball of radius r around (cx, cy), else 0.
func withinImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	v, ok, err := floatArgs("ripley_within", args, 5)
	if err != nil || !ok {
		return nil, err
	}
	if point.New(v[0], v[1]).Within(point.New(v[2], v[3]), v[4]) {
		return int64(1), nil
	}
	return int64(0), nil
}
