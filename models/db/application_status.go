package dbmodels

type ApplicationStatus struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:varchar(30);not null"`
}
