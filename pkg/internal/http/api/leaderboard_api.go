package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/services"
)

func listBestViewedPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	out, err := services.BestViewedPosts(page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(out)
}

func listMostCommentedPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	out, err := services.MostCommentedPosts(page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(out)
}

func listTopAuthorPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	out, err := services.TopAuthorPosts(page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(out)
}
