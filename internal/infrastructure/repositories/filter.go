package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"leadflow.backend/internal/domain/entities"
)

// leadColumns maps entity-level field names to lead table columns. Filter
// and sort specifications may only reference fields listed here; anything
// else is rejected before it reaches the database.
var leadColumns = map[string]string{
	"email":     "email",
	"firstName": "first_name",
	"lastName":  "last_name",
	"phone":     "phone",
	"company":   "company",
	"position":  "position",
	"stage":     "stage",
	"status":    "status",
	"source":    "source",
	"value":     "value",
	"country":   "country",
	"city":      "city",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// filterSQL renders a filter specification into a SQL condition. The
// Contains variant uses LOWER(...) LIKE so the match is case-insensitive
// on both postgres and sqlite.
func filterSQL(f entities.Filter) (string, []interface{}, error) {
	switch v := f.(type) {
	case entities.Equals:
		col, ok := leadColumns[v.Field]
		if !ok {
			return "", nil, fmt.Errorf("unknown filter field %q", v.Field)
		}
		return col + " = ?", []interface{}{v.Value}, nil
	case entities.Contains:
		col, ok := leadColumns[v.Field]
		if !ok {
			return "", nil, fmt.Errorf("unknown filter field %q", v.Field)
		}
		return "LOWER(" + col + ") LIKE ?", []interface{}{"%" + strings.ToLower(v.Value) + "%"}, nil
	case entities.And:
		return joinFilters(v.Filters, " AND ")
	case entities.Or:
		return joinFilters(v.Filters, " OR ")
	default:
		return "", nil, fmt.Errorf("unknown filter variant %T", f)
	}
}

func joinFilters(filters []entities.Filter, sep string) (string, []interface{}, error) {
	var (
		parts []string
		args  []interface{}
	)
	for _, f := range filters {
		sql, a, err := filterSQL(f)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, "("+sql+")")
		args = append(args, a...)
	}
	if len(parts) == 0 {
		return "", nil, errors.New("empty filter group")
	}
	return strings.Join(parts, sep), args, nil
}

// applyFilter adds a filter specification to a query; a nil filter
// matches everything.
func applyFilter(db *gorm.DB, f entities.Filter) (*gorm.DB, error) {
	if f == nil {
		return db, nil
	}
	sql, args, err := filterSQL(f)
	if err != nil {
		return nil, err
	}
	return db.Where(sql, args...), nil
}

// orderClause renders a sort specification; the field goes through the
// same whitelist as filters.
func orderClause(sort entities.SortSpec) (string, error) {
	col, ok := leadColumns[sort.Field]
	if !ok {
		return "", fmt.Errorf("unknown sort field %q", sort.Field)
	}
	dir := "ASC"
	if sort.Descending {
		dir = "DESC"
	}
	return col + " " + dir, nil
}

// isUniqueViolation classifies unique-constraint failures across the
// postgres and sqlite drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
