package services

import (
	"errors"
	"fmt"

	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/models"
	"gorm.io/gorm"
)

func GetFollowOnAuthor(user models.Account, author models.Account) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("follower_id = ? AND author_id = ?", user.ID, author.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow: %v", err)
	}
	return &follow, nil
}

// FollowAuthor has get-or-create semantics, following twice leaves exactly
// one record.
func FollowAuthor(user models.Account, author models.Account) (models.Follow, error) {
	if existing, err := GetFollowOnAuthor(user, author); err != nil {
		return models.Follow{}, err
	} else if existing != nil {
		return *existing, nil
	}

	follow := models.Follow{
		FollowerID: user.ID,
		AuthorID:   author.ID,
	}

	err := database.C.Save(&follow).Error
	return follow, err
}

// UnfollowAuthor removes every matching record and is a no-op when there
// is nothing to remove.
func UnfollowAuthor(user models.Account, author models.Account) error {
	return database.C.
		Where("follower_id = ? AND author_id = ?", user.ID, author.ID).
		Delete(&models.Follow{}).Error
}

func IsFollowing(userID, authorID uint) bool {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("follower_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func CountAuthorFollowers(authorID uint) int64 {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}
