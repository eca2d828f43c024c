// models/song.go
package models

// Song is one karaoke catalog entry. YoutubeURL is stored in canonical embed
// form (see videolink.ToEmbedURL). Songs are immutable after creation.
type Song struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Title      string `json:"title" gorm:"not null;size:200"`
	YoutubeURL string `json:"youtube_url" gorm:"not null"`
	Name       string `json:"name" gorm:"not null;size:100"`
}

func (Song) TableName() string {
	return "songs"
}
