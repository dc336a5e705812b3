package models

import (
	"gorm.io/datatypes"
)

type Post struct {
	BaseModel

	Text        string                      `json:"text"`
	Language    string                      `json:"language"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	// TotalViews only ever increases, one per read request, via an atomic
	// column update. Never write it back from a loaded record.
	TotalViews int64 `json:"total_views"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group,omitempty"`

	Comments []Comment `json:"comments,omitempty"`
}
