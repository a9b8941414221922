package scope

import "gorm.io/gorm"

// ByClient restricts a query to rows owned by one client.
func ByClient(clientID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("client_id = ?", clientID)
	}
}

// ByPeriod restricts a query to one payroll period.
func ByPeriod(month, year string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("month = ? AND year = ?", month, year)
	}
}
