package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/http/exts"
	"github.com/lumenblog/lumen/pkg/internal/services"
)

func createComment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return redirectToLogin(c)
	}

	author, item, err := resolveAuthorPost(c)
	if err != nil {
		return err
	}

	var data struct {
		Text string `json:"text" validate:"required,max=2048"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.NewComment(user, item, data.Text); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(postReadPath(author.Name, item.ID), fiber.StatusFound)
}
