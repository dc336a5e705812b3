package models

import "time"

// PostStatistic is a daily snapshot of a post's view counter, written by
// the statistics cron job. The post reference is nullable so snapshots
// survive post deletion.
type PostStatistic struct {
	BaseModel

	Date  time.Time `json:"date" gorm:"index"`
	Views int64     `json:"views"`

	PostID *uint `json:"post_id"`
	Post   *Post `json:"post,omitempty"`
}
