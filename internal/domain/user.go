package domain

// Role is the closed set of authorization roles.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is an account holder. Password holds only the bcrypt hash.
type User struct {
	Base
	FullName    string `gorm:"size:100;not null"`
	Email       string `gorm:"size:100"`
	PhoneNumber string `gorm:"size:20;not null;index"`
	Password    string `gorm:"size:200;not null"`
	Role        Role   `gorm:"size:20;not null"`

	BlogPosts []BlogPost `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Comments  []Comment  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
