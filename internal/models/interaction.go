package models

import "time"

// ArticleInteraction holds one user's like/save state and share count
// for one article. The (UserID, ArticleID) pair is unique so toggles
// are a single-row conditional update, never a read-then-write.
type ArticleInteraction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_article" json:"user_id"`
	ArticleID uint      `gorm:"not null;uniqueIndex:idx_user_article" json:"article_id"`
	Liked     bool      `gorm:"not null;default:false" json:"liked"`
	Saved     bool      `gorm:"not null;default:false" json:"saved"`
	Shares    int64     `gorm:"not null;default:0" json:"shares"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Article Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
}

// InteractionStatus is the payload returned by the status endpoint. A
// user with no interaction row gets the zero value.
type InteractionStatus struct {
	Liked       bool  `json:"liked"`
	Saved       bool  `json:"saved"`
	TotalLikes  int64 `json:"total_likes"`
	TotalShares int64 `json:"total_shares"`
}
