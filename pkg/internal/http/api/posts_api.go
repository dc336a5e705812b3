package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/http/exts"
	"github.com/lumenblog/lumen/pkg/internal/models"
	"github.com/lumenblog/lumen/pkg/internal/services"
)

func postReadPath(username string, postID uint) string {
	return fmt.Sprintf("/%s/%d", username, postID)
}

// resolveAuthorPost loads the post only when it really belongs to the
// named author, any mismatch reads as missing.
func resolveAuthorPost(c *fiber.Ctx) (models.Account, models.Post, error) {
	author, err := services.GetAccount(c.Params("username"))
	if err != nil {
		return author, models.Post{}, fiber.NewError(fiber.StatusNotFound, "no such author")
	}

	postID, err := c.ParamsInt("postId")
	if err != nil || postID < 1 {
		return author, models.Post{}, fiber.NewError(fiber.StatusNotFound, "no such post")
	}

	tx := services.FilterPostWithAuthor(database.C, author.ID)
	item, err := services.GetPost(tx, uint(postID))
	if err != nil {
		return author, item, fiber.NewError(fiber.StatusNotFound, "no such post")
	}

	return author, item, nil
}

func getPost(c *fiber.Ctx) error {
	author, item, err := resolveAuthorPost(c)
	if err != nil {
		return err
	}

	// Reading is also a write: one view per request, no dedup by viewer.
	if err := services.IncrementPostViews(item.ID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	item.TotalViews++

	comments, err := services.ListPostComments(item.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	following := false
	if user, ok := currentUser(c); ok {
		following = services.IsFollowing(user.ID, author.ID)
	}

	return c.JSON(fiber.Map{
		"post":      item,
		"comments":  comments,
		"following": following,
	})
}

func createPost(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return redirectToLogin(c)
	}

	var data struct {
		Text        string   `json:"text" validate:"required,max=4096"`
		Group       *string  `json:"group"`
		Attachments []string `json:"attachments"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Post{
		Text:        data.Text,
		Attachments: data.Attachments,
	}

	if data.Group != nil && len(*data.Group) > 0 {
		group, err := services.GetGroup(*data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("related group was not found: %v", err))
		}
		item.GroupID = &group.ID
	}

	if _, err := services.NewPost(user, item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect("/", fiber.StatusFound)
}

func editPost(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return redirectToLogin(c)
	}

	author, item, err := resolveAuthorPost(c)
	if err != nil {
		return err
	}

	// Not the owner: send them to the read view instead of erroring.
	if user.ID != item.AuthorID {
		return c.Redirect(postReadPath(author.Name, item.ID), fiber.StatusFound)
	}

	var data struct {
		Text        string   `json:"text" validate:"required,max=4096"`
		Group       *string  `json:"group"`
		Attachments []string `json:"attachments"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item.Text = data.Text
	item.Attachments = data.Attachments
	// Drop the preloaded associations so Save only touches the post row.
	item.Author = models.Account{}
	item.Group = nil
	item.GroupID = nil
	if data.Group != nil && len(*data.Group) > 0 {
		group, err := services.GetGroup(*data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("related group was not found: %v", err))
		}
		item.GroupID = &group.ID
	}

	if _, err := services.EditPost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(postReadPath(author.Name, item.ID), fiber.StatusFound)
}
