package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	localCache "github.com/lumenblog/lumen/pkg/internal/cache"
	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB points database.C at a fresh in-memory SQLite handle. A single
// connection keeps every query on the same memory database.
func testDB(t *testing.T) {
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
}

func testCache(t *testing.T) {
	t.Helper()
	if localCache.S == nil {
		if err := localCache.NewStore(); err != nil {
			t.Fatalf("set up cache store: %v", err)
		}
	}
}

func seedAccount(t *testing.T, name string) models.Account {
	t.Helper()
	account := models.Account{Name: name, Nick: name}
	if err := database.C.Create(&account).Error; err != nil {
		t.Fatalf("seed account %s: %v", name, err)
	}
	return account
}

func seedGroup(t *testing.T, alias string) models.Group {
	t.Helper()
	group := models.Group{Alias: alias, Title: "The " + alias + " group"}
	if err := database.C.Create(&group).Error; err != nil {
		t.Fatalf("seed group %s: %v", alias, err)
	}
	return group
}

func seedPost(t *testing.T, author models.Account, text string, group *models.Group) models.Post {
	t.Helper()
	post := models.Post{Text: text, AuthorID: author.ID, TotalViews: 1}
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := database.C.Create(&post).Error; err != nil {
		t.Fatalf("seed post %q: %v", text, err)
	}
	return post
}

func seedComments(t *testing.T, author models.Account, post models.Post, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		comment := models.Comment{
			Text:     fmt.Sprintf("comment %d", i),
			PostID:   post.ID,
			AuthorID: author.ID,
		}
		if err := database.C.Create(&comment).Error; err != nil {
			t.Fatalf("seed comment: %v", err)
		}
	}
}

func postIDs(posts []models.Post) []uint {
	return lo.Map(posts, func(item models.Post, _ int) uint {
		return item.ID
	})
}
