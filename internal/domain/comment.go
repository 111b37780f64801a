package domain

// Comment belongs to a blog post. Commenter mirrors BlogPost.Author: a
// display-name snapshot; ownership checks compare UserID.
type Comment struct {
	Base
	Content    string `gorm:"not null"`
	UserID     string `gorm:"size:64;not null;index"`
	Commenter  string `gorm:"size:100;not null"`
	BlogPostID string `gorm:"size:64;not null;index"`

	BlogPost *BlogPost
}
