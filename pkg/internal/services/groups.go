package services

import (
	"fmt"
	"regexp"

	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/models"
)

var groupAliasRegexp = regexp.MustCompile(`^[a-z0-9.-]+$`)

func GetGroup(alias string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("alias = ?", alias).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func NewGroup(item models.Group) (models.Group, error) {
	if !groupAliasRegexp.MatchString(item.Alias) {
		return item, fmt.Errorf("invalid group alias, must be lowercase letters, digits, dots or dashes")
	}

	var count int64
	if err := database.C.Model(&models.Group{}).Where("alias = ?", item.Alias).Count(&count).Error; err != nil {
		return item, fmt.Errorf("unable to count existing groups: %v", err)
	}
	if count > 0 {
		return item, fmt.Errorf("group alias is already taken")
	}

	err := database.C.Create(&item).Error
	return item, err
}

func EditGroup(item models.Group) (models.Group, error) {
	if !groupAliasRegexp.MatchString(item.Alias) {
		return item, fmt.Errorf("invalid group alias, must be lowercase letters, digits, dots or dashes")
	}

	err := database.C.Save(&item).Error
	return item, err
}
