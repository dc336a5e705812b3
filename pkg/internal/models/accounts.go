package models

// Account is a registered author. The name doubles as the profile slug,
// so it stays lowercase and URL safe.
type Account struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex" validate:"lowercase"`
	Nick        string `json:"nick"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`

	Password string `json:"-"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
}
