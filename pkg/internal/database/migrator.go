package database

import (
	"github.com/lumenblog/lumen/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Group{},
	&models.Post{},
	&models.Follow{},
	&models.PostStatistic{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Comment{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
