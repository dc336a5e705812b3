package services

import (
	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/models"
	"github.com/samber/lo"
)

type StatEntry struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

const statRankLimit = 5

type subjectCount struct {
	SubjectID uint
	Total     int64
}

func accountLabels(rows []subjectCount) (map[uint]string, error) {
	ids := lo.Map(rows, func(row subjectCount, _ int) uint {
		return row.SubjectID
	})
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	var accounts []models.Account
	if err := database.C.Where("id IN ?", ids).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return lo.SliceToMap(accounts, func(item models.Account) (uint, string) {
		return item.ID, item.Name
	}), nil
}

func rankToEntries(rows []subjectCount, labels map[uint]string) []StatEntry {
	entries := make([]StatEntry, 0, len(rows))
	for _, row := range rows {
		if label, ok := labels[row.SubjectID]; ok {
			entries = append(entries, StatEntry{Label: label, Value: row.Total})
		}
	}
	return entries
}

// RankAuthorsByPosts returns the five most prolific authors.
func RankAuthorsByPosts() ([]StatEntry, error) {
	var rows []subjectCount
	if err := database.C.Model(&models.Post{}).
		Select("author_id AS subject_id, COUNT(id) AS total").
		Group("author_id").
		Order("total DESC, author_id ASC").
		Limit(statRankLimit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	labels, err := accountLabels(rows)
	if err != nil {
		return nil, err
	}
	return rankToEntries(rows, labels), nil
}

// RankAuthorsByViews returns the five authors whose posts gathered the
// most views in total.
func RankAuthorsByViews() ([]StatEntry, error) {
	var rows []subjectCount
	if err := database.C.Model(&models.Post{}).
		Select("author_id AS subject_id, SUM(total_views) AS total").
		Group("author_id").
		Order("total DESC, author_id ASC").
		Limit(statRankLimit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	labels, err := accountLabels(rows)
	if err != nil {
		return nil, err
	}
	return rankToEntries(rows, labels), nil
}

// RankGroupsByPosts returns the five busiest groups. Ungrouped posts and
// empty groups never show up.
func RankGroupsByPosts() ([]StatEntry, error) {
	var rows []subjectCount
	if err := database.C.Model(&models.Post{}).
		Select("group_id AS subject_id, COUNT(id) AS total").
		Where("group_id IS NOT NULL").
		Group("group_id").
		Order("total DESC, group_id ASC").
		Limit(statRankLimit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	ids := lo.Map(rows, func(row subjectCount, _ int) uint {
		return row.SubjectID
	})
	labels := map[uint]string{}
	if len(ids) > 0 {
		var groups []models.Group
		if err := database.C.Where("id IN ?", ids).Find(&groups).Error; err != nil {
			return nil, err
		}
		labels = lo.SliceToMap(groups, func(item models.Group) (uint, string) {
			return item.ID, item.Title
		})
	}

	return rankToEntries(rows, labels), nil
}

// RankAuthorsByFollowers returns the five most followed authors.
func RankAuthorsByFollowers() ([]StatEntry, error) {
	var rows []subjectCount
	if err := database.C.Model(&models.Follow{}).
		Select("author_id AS subject_id, COUNT(id) AS total").
		Group("author_id").
		Order("total DESC, author_id ASC").
		Limit(statRankLimit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	labels, err := accountLabels(rows)
	if err != nil {
		return nil, err
	}
	return rankToEntries(rows, labels), nil
}
