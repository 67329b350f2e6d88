package models

// Genre is a fixed reference row. The deployment seeds the full set at
// bootstrap and the API exposes no write surface for it.
type Genre struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}
