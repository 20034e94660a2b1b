package store

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// PostgreSQL SQLSTATE codes answered with 400 Invalid Input.
var invalidInputPQCodes = map[pq.ErrorCode]bool{
	"22P02": true, // invalid_text_representation
	"23502": true, // not_null_violation
	"42703": true, // undefined_column
	"42601": true, // syntax_error
	"23503": true, // foreign_key_violation
	"23505": true, // unique_violation
}

// MySQL error numbers with the same meaning as the codes above.
var invalidInputMySQLNumbers = map[uint16]bool{
	1048: true, // ER_BAD_NULL_ERROR
	1054: true, // ER_BAD_FIELD_ERROR
	1062: true, // ER_DUP_ENTRY
	1064: true, // ER_PARSE_ERROR
	1366: true, // ER_TRUNCATED_WRONG_VALUE_FOR_FIELD
	1452: true, // ER_NO_REFERENCED_ROW_2
}

// SQLite primary result codes; extended codes are masked down to these.
var invalidInputSQLiteCodes = map[int]bool{
	sqlite3.SQLITE_CONSTRAINT: true,
	sqlite3.SQLITE_MISMATCH:   true,
}

// IsInvalidInput reports whether err is a database rejection caused by the
// client's input: a bad value representation, a missing required column, an
// unknown column, a syntax error, or a foreign key or uniqueness violation.
// Works across SQLite, PostgreSQL, and MySQL.
func IsInvalidInput(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return invalidInputPQCodes[pqErr.Code]
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return invalidInputMySQLNumbers[myErr.Number]
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code() & 0xff
		if invalidInputSQLiteCodes[code] {
			return true
		}
		// SQLITE_ERROR covers syntax errors and unknown columns alike.
		if code == sqlite3.SQLITE_ERROR {
			msg := strings.ToLower(liteErr.Error())
			return strings.Contains(msg, "syntax error") || strings.Contains(msg, "no such column")
		}
		return false
	}

	return false
}
