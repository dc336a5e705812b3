package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/services"
)

func listTimeline(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	out, err := services.ListTimeline(page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(out)
}

func listFollowTimeline(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return redirectToLogin(c)
	}

	page := c.QueryInt("page", 1)

	out, err := services.ListFollowTimeline(user, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(out)
}
