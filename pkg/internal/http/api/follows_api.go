package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/services"
)

func followAuthor(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return redirectToLogin(c)
	}

	author, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such author")
	}

	// Following yourself quietly goes back to the profile.
	if user.ID == author.ID {
		return c.Redirect("/"+author.Name, fiber.StatusFound)
	}

	if _, err := services.FollowAuthor(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/"+author.Name, fiber.StatusFound)
}

func unfollowAuthor(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return redirectToLogin(c)
	}

	author, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such author")
	}

	if err := services.UnfollowAuthor(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/"+author.Name, fiber.StatusFound)
}
