package data

import (
	"time"
)

// Movie represents the movies table. ID is the external movie database id.
type Movie struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false"`
	Title       string    `gorm:"not null;size:250;index:idx_movies_title"`
	Year        int       `gorm:"not null"`
	Description string    `gorm:"not null;size:1000"`
	Rating      float64   `gorm:"not null;default:0;index:idx_movies_rating"`
	Review      string    `gorm:"not null;size:250;default:''"`
	ImgURL      string    `gorm:"column:img_url;not null;size:250"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (Movie) TableName() string {
	return "movies"
}
