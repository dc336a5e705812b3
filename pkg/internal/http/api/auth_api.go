package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/http/exts"
	"github.com/lumenblog/lumen/pkg/internal/services"
)

func doRegister(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" validate:"required,lowercase,min=3,max=24"`
		Nick     string `json:"nick" validate:"max=48"`
		Password string `json:"password" validate:"required,min=8,max=72"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.CreateAccount(data.Name, data.Nick, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

func getLoginHint(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "authentication required",
		"next":    c.Query("next", "/"),
	})
}

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.AuthenticateAccount(data.Name, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	token, err := services.IssueToken(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"token":   token,
		"account": account,
	})
}
