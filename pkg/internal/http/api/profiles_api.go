package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/services"
)

func getProfile(c *fiber.Ctx) error {
	author, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such author")
	}

	page := c.QueryInt("page", 1)
	out, err := services.ListAuthorTimeline(author, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	following := false
	if user, ok := currentUser(c); ok {
		following = services.IsFollowing(user.ID, author.ID)
	}

	return c.JSON(fiber.Map{
		"author":    author,
		"page":      out,
		"following": following,
		"followers": services.CountAuthorFollowers(author.ID),
	})
}
