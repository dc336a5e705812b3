package services

import (
	"strings"
	"time"

	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/models"
	"github.com/pemistahl/lingua-go"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func FilterPostWithGroup(tx *gorm.DB, groupID uint) *gorm.DB {
	return tx.Where("group_id = ?", groupID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

// FilterPostWithFollowed narrows the set down to posts written by the
// authors the given user follows.
func FilterPostWithFollowed(tx *gorm.DB, userID uint) *gorm.DB {
	return tx.Where(
		"author_id IN (?)",
		database.C.Model(&models.Follow{}).Select("author_id").Where("follower_id = ?", userID),
	)
}

// FilterPostWithFuzzySearch matches the probe case-insensitively against
// the post text, the author name, the group title and the textual form of
// the creation timestamp. Kept to LOWER/LIKE and CAST so the same clause
// runs on Postgres and SQLite.
func FilterPostWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	probe = "%" + strings.ToLower(probe) + "%"
	return tx.
		Joins("JOIN accounts ON accounts.id = posts.author_id").
		Joins(`LEFT JOIN "groups" ON "groups".id = posts.group_id`).
		Where(
			`LOWER(posts.text) LIKE ? OR LOWER(accounts.name) LIKE ? OR LOWER("groups".title) LIKE ? OR CAST(posts.created_at AS TEXT) LIKE ?`,
			probe, probe, probe, probe,
		)
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("posts.id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]models.Post, error) {
	var items []models.Post
	if take >= 0 {
		tx = tx.Limit(take)
	}
	if offset >= 0 {
		tx = tx.Offset(offset)
	}
	if err := PreloadGeneral(tx).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func NewPost(user models.Account, item models.Post) (models.Post, error) {
	item.AuthorID = user.ID
	item.Language = DetectLanguage(item.Text)
	if item.TotalViews == 0 {
		// The author's own first look at the fresh post counts as a view.
		item.TotalViews = 1
	}

	start := time.Now()
	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Dur("elapsed", time.Since(start)).Uint("author", user.ID).Msg("The post is posted.")
	return item, nil
}

func EditPost(item models.Post) (models.Post, error) {
	item.Language = DetectLanguage(item.Text)
	err := database.C.Save(&item).Error
	return item, err
}

var languageDetector lingua.LanguageDetector

func DetectLanguage(content string) string {
	if languageDetector == nil {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			WithLowAccuracyMode().
			Build()
	}

	if lang, ok := languageDetector.DetectLanguageOf(content); ok {
		return strings.ToLower(lang.IsoCode639_1().String())
	}
	return "unknown"
}
