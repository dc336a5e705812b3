package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/services"
)

func searchPosts(c *fiber.Ctx) error {
	probe := c.Query("q")
	if len(probe) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "q is required")
	}

	items, err := services.SearchPosts(probe)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"query": probe,
		"count": len(items),
		"data":  items,
	})
}
