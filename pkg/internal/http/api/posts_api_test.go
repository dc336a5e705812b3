package api

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/models"
)

func TestCreatePostAnonymousRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)

	resp := perform(t, app, "POST", "/new", `{"text":"hello there"}`, "")
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status=%d want=%d", resp.StatusCode, fiber.StatusFound)
	}
	if loc := resp.Header.Get(fiber.HeaderLocation); !strings.Contains(loc, "/auth/login?next=") {
		t.Fatalf("location=%q want login redirect", loc)
	}

	var count int64
	if err := database.C.Model(&models.Post{}).Count(&count).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if count != 0 {
		t.Fatalf("posts=%d want=0", count)
	}
}

func TestCreatePostPersistsForOwner(t *testing.T) {
	app := newTestApp(t)
	author, token := seedAccountWithToken(t, "writer")

	resp := perform(t, app, "POST", "/new", `{"text":"the very first words"}`, token)
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status=%d want=%d", resp.StatusCode, fiber.StatusFound)
	}
	if loc := resp.Header.Get(fiber.HeaderLocation); loc != "/" {
		t.Fatalf("location=%q want=/", loc)
	}

	var item models.Post
	if err := database.C.Where("author_id = ?", author.ID).First(&item).Error; err != nil {
		t.Fatalf("load post: %v", err)
	}
	if item.Text != "the very first words" {
		t.Fatalf("text=%q", item.Text)
	}
	if item.TotalViews != 1 {
		t.Fatalf("total_views=%d want=1", item.TotalViews)
	}
}

func TestEditPostByNonOwnerRedirectsWithoutSaving(t *testing.T) {
	app := newTestApp(t)
	author, _ := seedAccountWithToken(t, "writer")
	_, intruderToken := seedAccountWithToken(t, "intruder")
	post := seedPostRow(t, author, "original words")

	target := fmt.Sprintf("/%s/%d/edit", author.Name, post.ID)
	resp := perform(t, app, "PUT", target, `{"text":"rewritten"}`, intruderToken)
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status=%d want=%d", resp.StatusCode, fiber.StatusFound)
	}
	if loc := resp.Header.Get(fiber.HeaderLocation); loc != fmt.Sprintf("/%s/%d", author.Name, post.ID) {
		t.Fatalf("location=%q want read view", loc)
	}

	var got models.Post
	if err := database.C.First(&got, post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if got.Text != "original words" {
		t.Fatalf("text=%q want unchanged", got.Text)
	}
}

func TestEditPostByOwnerUpdatesFields(t *testing.T) {
	app := newTestApp(t)
	author, token := seedAccountWithToken(t, "writer")
	post := seedPostRow(t, author, "original words")

	target := fmt.Sprintf("/%s/%d/edit", author.Name, post.ID)
	resp := perform(t, app, "PUT", target, `{"text":"rewritten by the author"}`, token)
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status=%d want=%d", resp.StatusCode, fiber.StatusFound)
	}

	var got models.Post
	if err := database.C.First(&got, post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if got.Text != "rewritten by the author" {
		t.Fatalf("text=%q want updated", got.Text)
	}
}

func TestGetPostCountsEveryRequest(t *testing.T) {
	app := newTestApp(t)
	author, _ := seedAccountWithToken(t, "writer")
	post := seedPostRow(t, author, "worth a read")

	target := fmt.Sprintf("/%s/%d", author.Name, post.ID)
	for i := 0; i < 3; i++ {
		resp := perform(t, app, "GET", target, "", "")
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("read %d status=%d want=%d", i, resp.StatusCode, fiber.StatusOK)
		}
	}

	var got models.Post
	if err := database.C.First(&got, post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if want := post.TotalViews + 3; got.TotalViews != want {
		t.Fatalf("total_views=%d want=%d", got.TotalViews, want)
	}
}

func TestGetPostOfWrongAuthorIsMissing(t *testing.T) {
	app := newTestApp(t)
	author, _ := seedAccountWithToken(t, "writer")
	other, _ := seedAccountWithToken(t, "other")
	post := seedPostRow(t, author, "belongs to writer")

	resp := perform(t, app, "GET", fmt.Sprintf("/%s/%d", other.Name, post.ID), "", "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status=%d want=%d", resp.StatusCode, fiber.StatusNotFound)
	}
}
