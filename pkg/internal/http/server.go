package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	pkg "github.com/lumenblog/lumen/pkg/internal"
	"github.com/lumenblog/lumen/pkg/internal/http/api"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewServer() *App {
	jsonCodec := jsoniter.ConfigCompatibleWithStandardLibrary

	app := fiber.New(fiber.Config{
		AppName:      "Lumen v" + pkg.AppVersion,
		JSONEncoder:  jsonCodec.Marshal,
		JSONDecoder:  jsonCodec.Unmarshal,
		ErrorHandler: renderError,
	})

	app.Use(api.AuthMiddleware)

	api.MapAPIs(app)

	return &App{app}
}

func renderError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting the server...")
	}
}
