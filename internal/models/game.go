package models

// Game represents a catalog entry in the store.
//
// Genre is a resolved reference: it is non-nil only when the query that
// produced the Game preloaded the relation. Consumers that need the genre
// name must check for nil instead of assuming it is populated.
type Game struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:50;not null"`
	GenreID     uint    `json:"genreId"`
	Genre       *Genre  `json:"genre,omitempty" gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Price       float64 `json:"price" gorm:"not null"`
	ReleaseDate Date    `json:"releaseDate" gorm:"type:date"`
}
