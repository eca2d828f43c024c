// models/session.go
package models

import "time"

// Session groups the teams and games of one event.
type Session struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	DateCreated time.Time `json:"date_created" gorm:"autoCreateTime"`
	Description string    `json:"description" gorm:"type:text;default:''"`
}

func (Session) TableName() string {
	return "sessions"
}
