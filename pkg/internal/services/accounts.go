package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/models"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var accountNameRegexp = regexp.MustCompile(`^[a-z0-9.-]+$`)

func GetAccount(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountByID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func CreateAccount(name, nick, password string) (models.Account, error) {
	var account models.Account
	if !accountNameRegexp.MatchString(name) {
		return account, fmt.Errorf("invalid account name, must be lowercase letters, digits, dots or dashes")
	}

	var count int64
	if err := database.C.Model(&models.Account{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return account, fmt.Errorf("unable to count existing accounts: %v", err)
	}
	if count > 0 {
		return account, fmt.Errorf("account name is already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, err
	}

	account = models.Account{
		Name:     name,
		Nick:     nick,
		Password: string(hashed),
	}

	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func AuthenticateAccount(name, password string) (models.Account, error) {
	account, err := GetAccount(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, fmt.Errorf("account was not found")
		}
		return account, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return account, fmt.Errorf("invalid password")
	}

	return account, nil
}

func IssueToken(user models.Account) (string, error) {
	duration := viper.GetDuration("security.token_valid_duration")
	if duration <= 0 {
		duration = 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"sub": user.Name,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(viper.GetString("security.jwt_secret")))
}

func ParseToken(tokenString string) (models.Account, error) {
	var account models.Account

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return account, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return account, fmt.Errorf("unexpected token claims")
	}
	name, ok := claims["sub"].(string)
	if !ok {
		return account, fmt.Errorf("token subject is missing")
	}

	return GetAccount(name)
}
