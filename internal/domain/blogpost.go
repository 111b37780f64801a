package domain

import "gorm.io/datatypes"

// BlogPost is an article authored by a user. Attribution is the UserID
// relation; Author is a display-name snapshot taken at creation.
type BlogPost struct {
	Base
	Title   string                      `gorm:"size:200;not null"`
	Content string                      `gorm:"not null"`
	UserID  string                      `gorm:"size:64;not null;index"`
	Author  string                      `gorm:"size:100;not null"`
	Tags    datatypes.JSONSlice[string] `gorm:"type:json"`

	Comments []Comment `gorm:"foreignKey:BlogPostID;constraint:OnDelete:CASCADE"`
}
