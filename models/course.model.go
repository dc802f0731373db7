package models

import "gorm.io/gorm"

// Course publication status
const (
	CourseDraft     = "draft"
	CoursePublished = "published"
)

// Course represents a learning course authored by an instructor
type Course struct {
	gorm.Model
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"not null"`
	Image        string `json:"image" gorm:"default:''"`
	Price        string `json:"price" gorm:"default:'0'"` // decimal as text, "0" means free
	InstructorID uint   `json:"instructor_id" gorm:"index;not null"`
	CategoryID   *uint  `json:"category_id" gorm:"index"`
	Status       string `json:"status" gorm:"default:'draft'"` // draft, published
	Content      string `json:"content"`                       // markdown body
	IsDeleted    bool   `gorm:"default:false"`
}
