package client

import (
	"time"

	"github.com/google/uuid"
)

// Client is the billing entity a payslip batch is issued on behalf of.
// At most one client is the default at any time.
type Client struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null"`
	Address       string
	ContactPerson string
	Email         string
	Phone         string
	IsDefault     bool `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fallback values used when no client rows exist at all, matching the
// branding the portal shipped with.
const (
	FallbackName    = "Newchecks Solutions Pvt. Ltd"
	FallbackAddress = "#428, 2nd floor 8th block Koramangala, Bangalore, Karnataka- 560095"
)

// Fallback returns the synthesized default used by read paths when the
// clients collection is empty. It is never persisted by reads.
func Fallback() Client {
	return Client{
		Name:      FallbackName,
		Address:   FallbackAddress,
		IsDefault: true,
	}
}
