package model

import (
	"time"

	"gorm.io/datatypes"
)

// Поддерживаемые шаблоны.
const (
	TemplateModern  = "modern"
	TemplateClassic = "classic"
)

// DefaultTitle — заголовок нового резюме, если пользователь его не задал.
const DefaultTitle = "Untitled Resume"

// Resume — серверная модель резюме пользователя.
type Resume struct {
	ID      string `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID string `gorm:"not null;index" json:"owner_id"`

	Title string `gorm:"not null" json:"title"`

	// Content хранится как непрозрачный JSON и получает смысл только после document.Normalize.
	Content    datatypes.JSON `json:"content"`
	TemplateID string         `gorm:"not null;default:modern" json:"template_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
