package models

type Group struct {
	BaseModel

	Alias       string `json:"alias" gorm:"uniqueIndex" validate:"lowercase"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Posts []Post `json:"posts,omitempty"`
}
