package report

import "database/sql"

// Report is one lost/found item record. The `items` table is the only
// persisted state besides the upload directory.
type Report struct {
	ID          int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"column:name" json:"name"`
	Course      string         `gorm:"column:course" json:"course"`
	Contact     string         `gorm:"column:contact" json:"contact"`
	Category    string         `gorm:"column:category" json:"category"`
	Description string         `gorm:"column:description" json:"description"`
	Status      string         `gorm:"column:status" json:"status"`
	Image       sql.NullString `gorm:"column:image" json:"-"` // relative /uploads/... path, null without a photo
	Date        string         `gorm:"column:date" json:"date"`
}

func (Report) TableName() string { return "items" }

// DefaultStatus is assumed when a submission carries no status field.
const DefaultStatus = "Lost"
