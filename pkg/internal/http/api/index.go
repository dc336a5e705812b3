package api

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/models"
	"github.com/lumenblog/lumen/pkg/internal/services"
)

// MapAPIs wires the routes. Static paths must come before the
// /:username catch-alls, fiber matches in registration order.
func MapAPIs(app *fiber.App) {
	auth := app.Group("/auth")
	{
		auth.Post("/register", doRegister)
		auth.Get("/login", getLoginHint)
		auth.Post("/login", doLogin)
	}

	app.Get("/", listTimeline)
	app.Get("/search", searchPosts)

	app.Get("/best_views", listBestViewedPosts)
	app.Get("/best_comment", listMostCommentedPosts)
	app.Get("/best_author", listTopAuthorPosts)

	app.Get("/stat_view", statAuthorViews)
	app.Get("/stat_group", statGroupPosts)
	app.Get("/stat_author", statAuthorPosts)
	app.Get("/stat_follow", statAuthorFollowers)

	app.Get("/group", listGroupDirectory)
	app.Post("/new_group", createGroup)
	app.Get("/group/:slug", listGroupPosts)
	app.Get("/group/:slug/edit", getGroupForEdit)
	app.Put("/group/:slug/edit", editGroup)

	app.Post("/new", createPost)
	app.Get("/follow", listFollowTimeline)

	app.Post("/:username/follow", followAuthor)
	app.Post("/:username/unfollow", unfollowAuthor)
	app.Get("/:username", getProfile)
	app.Get("/:username/:postId", getPost)
	app.Put("/:username/:postId/edit", editPost)
	app.Post("/:username/:postId/comment", createComment)
}

// AuthMiddleware resolves the bearer token or the auth cookie into the
// "user" local. Requests with a broken or stale token pass through as
// anonymous, the guards decide what that means per route.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("auth_token")
	if raw := c.Get(fiber.HeaderAuthorization); len(raw) > 7 && raw[:7] == "Bearer " {
		tokenString = raw[7:]
	}

	if len(tokenString) > 0 {
		if user, err := services.ParseToken(tokenString); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}

func currentUser(c *fiber.Ctx) (models.Account, bool) {
	user, ok := c.Locals("user").(models.Account)
	return user, ok
}

func redirectToLogin(c *fiber.Ctx) error {
	return c.Redirect(
		"/auth/login?next="+url.QueryEscape(c.OriginalURL()),
		fiber.StatusFound,
	)
}
