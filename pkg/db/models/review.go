package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer testimonial; it stays hidden until moderated.
type Review struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AuthorName  string    `gorm:"column:author_name;not null"`
	Body        string    `gorm:"column:body;not null;default:''"`
	Rating      int       `gorm:"column:rating;not null"`
	IsPublished bool      `gorm:"column:is_published;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
