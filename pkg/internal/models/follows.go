package models

// Follow is a directed subscription edge from a reader to an author.
// Uniqueness of the (follower, author) pair is enforced by the
// get-or-create path in services, not by the schema.
type Follow struct {
	BaseModel

	FollowerID uint    `json:"follower_id"`
	Follower   Account `json:"follower"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}
