package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/lumenblog/lumen/pkg/internal/cache"
	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const timelineOrder = "created_at DESC, id DESC"

func timelineCacheTTL() time.Duration {
	if ttl := viper.GetDuration("performance.timeline_cache_ttl"); ttl > 0 {
		return ttl
	}
	return 20 * time.Second
}

// ListTimeline returns one page of the global timeline. Pages are cached
// per page number and expire by elapsed time only, so a freshly created
// post may not show up until the window passes.
func ListTimeline(page int) (Page[models.Post], error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	key := fmt.Sprintf("timeline-page#%d", page)
	if val, err := marshal.Get(ctx, key, new(Page[models.Post])); err == nil {
		return *val.(*Page[models.Post]), nil
	}

	out, err := Paginate[models.Post](PreloadGeneral(database.C), timelineOrder, page)
	if err != nil {
		return out, err
	}

	_ = marshal.Set(
		ctx,
		key,
		out,
		store.WithExpiration(timelineCacheTTL()),
		store.WithTags([]string{"timeline"}),
	)

	return out, nil
}

func ListGroupTimeline(group models.Group, page int) (Page[models.Post], error) {
	tx := FilterPostWithGroup(PreloadGeneral(database.C), group.ID)
	return Paginate[models.Post](tx, timelineOrder, page)
}

func ListAuthorTimeline(author models.Account, page int) (Page[models.Post], error) {
	tx := FilterPostWithAuthor(PreloadGeneral(database.C), author.ID)
	return Paginate[models.Post](tx, timelineOrder, page)
}

func ListFollowTimeline(user models.Account, page int) (Page[models.Post], error) {
	tx := FilterPostWithFollowed(PreloadGeneral(database.C), user.ID)
	return Paginate[models.Post](tx, timelineOrder, page)
}

type GroupDirectoryEntry struct {
	models.Group

	TotalPosts int64 `json:"total_posts"`
}

// ListGroupDirectory lists groups that have posts first, most active on
// top, then every empty group. Ties and the empty tail are ordered by id
// so the listing is deterministic.
func ListGroupDirectory() ([]GroupDirectoryEntry, error) {
	var ranked []struct {
		GroupID uint
		Total   int64
	}
	if err := database.C.Model(&models.Post{}).
		Select("group_id, COUNT(id) AS total").
		Where("group_id IS NOT NULL").
		Group("group_id").
		Order("total DESC, group_id ASC").
		Scan(&ranked).Error; err != nil {
		return nil, err
	}

	rankedIDs := lo.Map(ranked, func(row struct {
		GroupID uint
		Total   int64
	}, _ int) uint {
		return row.GroupID
	})

	var entries []GroupDirectoryEntry
	if len(rankedIDs) > 0 {
		var groups []models.Group
		if err := database.C.Where("id IN ?", rankedIDs).Find(&groups).Error; err != nil {
			return nil, err
		}
		groupMap := lo.SliceToMap(groups, func(item models.Group) (uint, models.Group) {
			return item.ID, item
		})
		for _, row := range ranked {
			if group, ok := groupMap[row.GroupID]; ok {
				entries = append(entries, GroupDirectoryEntry{Group: group, TotalPosts: row.Total})
			}
		}
	}

	restTx := database.C.Order("id ASC")
	if len(rankedIDs) > 0 {
		restTx = restTx.Where("id NOT IN ?", rankedIDs)
	}
	var rest []models.Group
	if err := restTx.Find(&rest).Error; err != nil {
		return nil, err
	}
	for _, group := range rest {
		entries = append(entries, GroupDirectoryEntry{Group: group})
	}

	return entries, nil
}

func BestViewedPosts(page int) (Page[models.Post], error) {
	return Paginate[models.Post](PreloadGeneral(database.C), "total_views DESC, id ASC", page)
}

// MostCommentedPosts ranks posts by their comment count. A post with no
// comments has no row in the grouped set and therefore never appears.
func MostCommentedPosts(page int) (Page[models.Post], error) {
	var ranked []struct {
		PostID uint
		Total  int64
	}
	if err := database.C.Model(&models.Comment{}).
		Select("post_id, COUNT(id) AS total").
		Group("post_id").
		Order("total DESC, post_id ASC").
		Scan(&ranked).Error; err != nil {
		return Page[models.Post]{}, err
	}

	ids := lo.Map(ranked, func(row struct {
		PostID uint
		Total  int64
	}, _ int) uint {
		return row.PostID
	})

	return paginateRankedPosts(ids, page)
}

// TopAuthorPosts lists the posts of the single most followed author. With
// no follow records at all there is no such author, so the page is empty
// rather than an error.
func TopAuthorPosts(page int) (Page[models.Post], error) {
	var ranked []struct {
		AuthorID uint
		Total    int64
	}
	if err := database.C.Model(&models.Follow{}).
		Select("author_id, COUNT(id) AS total").
		Group("author_id").
		Order("total DESC, author_id ASC").
		Limit(1).
		Scan(&ranked).Error; err != nil {
		return Page[models.Post]{}, err
	}

	if len(ranked) == 0 {
		return Page[models.Post]{
			Items:      []models.Post{},
			Number:     1,
			Size:       PageSize(),
			TotalPages: 1,
		}, nil
	}

	tx := FilterPostWithAuthor(PreloadGeneral(database.C), ranked[0].AuthorID)
	return Paginate[models.Post](tx, timelineOrder, page)
}

// paginateRankedPosts materializes one page of posts out of a pre-ranked
// id list, preserving the rank order.
func paginateRankedPosts(ids []uint, page int) (Page[models.Post], error) {
	size := PageSize()
	number, totalPages := pageBounds(int64(len(ids)), page, size)

	start := (number - 1) * size
	end := min(start+size, len(ids))
	window := ids[start:end]

	items := make([]models.Post, 0, len(window))
	if len(window) > 0 {
		var posts []models.Post
		if err := PreloadGeneral(database.C).Where("id IN ?", window).Find(&posts).Error; err != nil {
			return Page[models.Post]{}, err
		}
		postMap := lo.SliceToMap(posts, func(item models.Post) (uint, models.Post) {
			return item.ID, item
		})
		for _, id := range window {
			if post, ok := postMap[id]; ok {
				items = append(items, post)
			}
		}
	}

	return Page[models.Post]{
		Items:      items,
		Number:     number,
		Size:       size,
		TotalItems: int64(len(ids)),
		TotalPages: totalPages,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}, nil
}

func SearchPosts(probe string) ([]models.Post, error) {
	tx := FilterPostWithFuzzySearch(database.C.Model(&models.Post{}), probe).
		Select("posts.*")
	return ListPost(tx, -1, -1, "posts.created_at DESC, posts.id DESC")
}
