package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/stayhub/backend/internal/domain/shared"
)

var allowedOrderColumns = map[string]bool{
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"current_stock": true,
	"check_in":      true,
	"check_out":     true,
	"order_number":  true,
}

// applyFilter applies pagination and ordering from a shared.Filter.
// Order columns are allow-listed to keep user input out of SQL.
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	orderBy := filter.OrderBy
	if !allowedOrderColumns[orderBy] {
		orderBy = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		dir = "ASC"
	}
	query = query.Order(orderBy + " " + dir)

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	return query
}
