package mapping

import "database/sql"

// FromNullString maps SQL NULL to an empty string.
func FromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
