package book

import (
	"time"

	"github.com/vishalparmarr/react-native-bookworm/internal/user"
)

type Book struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	Caption   string    `json:"caption"`
	Rating    int       `json:"ratings"`
	ImageURL  string    `json:"image"`
	UserID    string    `json:"userId"`
	User      user.User `gorm:"foreignKey:UserID" json:"user"`
}
