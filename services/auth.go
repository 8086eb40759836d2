package services

import (
	"errors"
	"os"
	"strings"
	"time"

	"coinadmin/database"
	"coinadmin/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 7 * 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidToken = errors.New("invalid token")

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return []byte(secret)
}

func CreateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   float64(user.ID),
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// VerifyToken returns the user ID a valid token was issued for.
func VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return uint(sub), nil
}

// Login verifies credentials, stamps the sign-in time and opens a login
// session record for the staff table.
func Login(email, password string) (models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	now := time.Now()
	user.LastSignInAt = &now
	if err := database.DB.Save(&user).Error; err != nil {
		return models.User{}, "", err
	}

	session := models.LoginSession{
		Username: user.Username,
		Email:    user.Email,
		SignInAt: now,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return models.User{}, "", err
	}

	token, err := CreateToken(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Logout stamps the sign-out time and closes the operator's most recent
// open session, if any.
func Logout(user models.User) error {
	now := time.Now()
	user.LastSignOutAt = &now
	if err := database.DB.Save(&user).Error; err != nil {
		return err
	}

	var session models.LoginSession
	err := database.DB.
		Where("username = ? AND sign_out_at IS NULL", user.Username).
		Order("sign_in_at desc").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	session.SignOutAt = &now
	return database.DB.Save(&session).Error
}
