package database

import (
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// foldFunc is the SQL name of the Unicode lowercasing function.
// SQLite's own LIKE and lower() only fold ASCII letters.
const foldFunc = "fold"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(foldFunc, 1, fold)
}

func fold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}
