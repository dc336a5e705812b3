package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/http/exts"
	"github.com/lumenblog/lumen/pkg/internal/models"
	"github.com/lumenblog/lumen/pkg/internal/services"
)

func listGroupDirectory(c *fiber.Ctx) error {
	entries, err := services.ListGroupDirectory()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": len(entries),
		"data":  entries,
	})
}

func listGroupPosts(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such group")
	}

	page := c.QueryInt("page", 1)
	out, err := services.ListGroupTimeline(group, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"group": group,
		"page":  out,
	})
}

func createGroup(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return redirectToLogin(c)
	}

	var data struct {
		Title       string `json:"title" validate:"required,max=128"`
		Alias       string `json:"alias" validate:"required,lowercase,max=64"`
		Description string `json:"description" validate:"max=1024"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.NewGroup(models.Group{
		Title:       data.Title,
		Alias:       data.Alias,
		Description: data.Description,
	}); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect("/group", fiber.StatusFound)
}

func getGroupForEdit(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return redirectToLogin(c)
	}

	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such group")
	}

	return c.JSON(group)
}

func editGroup(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return redirectToLogin(c)
	}

	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no such group")
	}

	var data struct {
		Title       string `json:"title" validate:"required,max=128"`
		Alias       string `json:"alias" validate:"required,lowercase,max=64"`
		Description string `json:"description" validate:"max=1024"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group.Title = data.Title
	group.Alias = data.Alias
	group.Description = data.Description

	if _, err := services.EditGroup(group); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect("/group", fiber.StatusFound)
}
