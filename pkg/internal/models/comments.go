package models

// Comment has no edit or delete surface, records are immutable once saved.
type Comment struct {
	BaseModel

	Text string `json:"text"`

	PostID uint `json:"post_id"`
	Post   Post `json:"post"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}
