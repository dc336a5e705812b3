package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/models"
	"github.com/lumenblog/lumen/pkg/internal/services"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.RunMigration(db); err != nil {
		t.Fatalf("run migration: %v", err)
	}
	database.C = db

	viper.Set("security.jwt_secret", "unit-test-secret")

	app := fiber.New()
	app.Use(AuthMiddleware)
	MapAPIs(app)
	return app
}

func seedAccountWithToken(t *testing.T, name string) (models.Account, string) {
	t.Helper()
	account, err := services.CreateAccount(name, name, "a-long-password")
	if err != nil {
		t.Fatalf("create account %s: %v", name, err)
	}
	token, err := services.IssueToken(account)
	if err != nil {
		t.Fatalf("issue token for %s: %v", name, err)
	}
	return account, token
}

func seedPostRow(t *testing.T, author models.Account, text string) models.Post {
	t.Helper()
	post := models.Post{Text: text, AuthorID: author.ID, TotalViews: 1}
	if err := database.C.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}

func perform(t *testing.T, app *fiber.App, method, target, body, token string) *http.Response {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, 30000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}
