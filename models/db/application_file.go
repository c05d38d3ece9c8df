package dbmodels

// ApplicationFile keeps blob names only, content lives in object storage.
type ApplicationFile struct {
	ID            uint    `gorm:"primaryKey"`
	ApplicationID string  `gorm:"type:varchar(19);not null;uniqueIndex"`
	Resume        *string `gorm:"type:varchar(255)"`
	CoverLetter   *string `gorm:"type:varchar(255)"`
}
