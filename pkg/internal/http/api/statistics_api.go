package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/services"
	"github.com/samber/lo"
)

func renderStat(c *fiber.Ctx, entries []services.StatEntry, err error) error {
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"labels": lo.Map(entries, func(item services.StatEntry, _ int) string {
			return item.Label
		}),
		"data": lo.Map(entries, func(item services.StatEntry, _ int) int64 {
			return item.Value
		}),
	})
}

func statAuthorPosts(c *fiber.Ctx) error {
	entries, err := services.RankAuthorsByPosts()
	return renderStat(c, entries, err)
}

func statAuthorViews(c *fiber.Ctx) error {
	entries, err := services.RankAuthorsByViews()
	return renderStat(c, entries, err)
}

func statGroupPosts(c *fiber.Ctx) error {
	entries, err := services.RankGroupsByPosts()
	return renderStat(c, entries, err)
}

func statAuthorFollowers(c *fiber.Ctx) error {
	entries, err := services.RankAuthorsByFollowers()
	return renderStat(c, entries, err)
}
