package services

import (
	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/models"
)

func ListPostComments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := database.C.
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

func CountPostComments(postID uint) int64 {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}

// NewComment records an immutable comment, there is no edit or delete
// path afterwards.
func NewComment(user models.Account, post models.Post, text string) (models.Comment, error) {
	comment := models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: user.ID,
	}

	err := database.C.Create(&comment).Error
	return comment, err
}
