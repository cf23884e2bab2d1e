package models

import "time"

// Crime is one entry of the penal code: the article that defines it, the
// sentence in months, the fine and the bail amount.
type Crime struct {
	ID          uint      `json:"id" gorm:"primaryKey;column:id"`
	Article     string    `json:"article" gorm:"column:article;size:100;not null;uniqueIndex"`
	Title       string    `json:"title" gorm:"column:title;size:255;not null;default:''"`
	Description string    `json:"description" gorm:"column:description;type:text;not null;default:''"`
	Time        int       `json:"time" gorm:"column:time;not null;default:0"`
	Fine        float64   `json:"fine" gorm:"column:fine;not null;default:0"`
	Fiance      float64   `json:"fiance" gorm:"column:fiance;not null;default:0"`
	Financable  bool      `json:"financable" gorm:"column:financable;not null;default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Crime) TableName() string {
	return "crimes"
}

// UpsertColumns lists the columns overwritten when an article already exists.
var UpsertColumns = []string{"title", "description", "time", "fine", "fiance", "financable", "updated_at"}
