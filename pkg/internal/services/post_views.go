package services

import (
	"time"

	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// IncrementPostViews adds exactly one view per call as a single atomic SQL
// update, so simultaneous readers never lose each other's increments.
func IncrementPostViews(postID uint) error {
	return database.C.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("total_views", gorm.Expr("total_views + ?", 1)).Error
}

// SnapshotPostStatistics writes one statistic row per post with the view
// counter as of today. Scheduled daily from main.
func SnapshotPostStatistics() {
	var posts []models.Post
	if err := database.C.Select("id, total_views").Find(&posts).Error; err != nil {
		log.Error().Err(err).Msg("An error occurred when loading posts for the statistic snapshot...")
		return
	}
	if len(posts) == 0 {
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	rows := lo.Map(posts, func(item models.Post, _ int) models.PostStatistic {
		return models.PostStatistic{
			Date:   today,
			Views:  item.TotalViews,
			PostID: lo.ToPtr(item.ID),
		}
	})

	if err := database.C.CreateInBatches(rows, 1000).Error; err != nil {
		log.Error().Err(err).Msg("An error occurred when saving post statistics...")
		return
	}

	log.Info().Int("count", len(rows)).Msg("Post statistics are recorded.")
}
