package helper

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"
	"time"

	"leevienna_shop/database"
	"leevienna_shop/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetProfileByEmail(e string) (*model.UserProfile, error) {
	db := database.DB
	var profile model.UserProfile
	if err := db.Where(&model.UserProfile{Email: e}).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// ClaimsFromLocals reads the raw identity out of the parsed JWT without
// touching the database.
func ClaimsFromLocals(c *fiber.Ctx) (uint, string) {
	u := c.Locals("user")
	if u == nil {
		return 0, ""
	}
	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		return 0, ""
	}
	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ""
	}
	userIdFloat, _ := claims["userId"].(float64)
	email, _ := claims["email"].(string)
	return uint(userIdFloat), email
}

// GetInfoUserFromToken resolves the signed-in profile from the parsed JWT in
// Locals. Returns a zero claim and empty profile for guests.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, model.UserProfile) {
	var emptyProfile model.UserProfile
	guestClaim := model.TokenClaim{}

	u := c.Locals("user")
	if u == nil {
		return guestClaim, emptyProfile
	}

	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		return guestClaim, emptyProfile
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return guestClaim, emptyProfile
	}

	userIdFloat, _ := claims["userId"].(float64)
	if userIdFloat == 0 {
		return guestClaim, emptyProfile
	}

	email, _ := claims["email"].(string)
	tokenClaim := model.TokenClaim{
		UserId: uint(userIdFloat),
		Email:  email,
	}

	var profile model.UserProfile
	db := database.DB
	if err := db.First(&profile, tokenClaim.UserId).Error; err != nil {
		log.Printf("profile not found (id=%d): %v", tokenClaim.UserId, err)
		return guestClaim, emptyProfile
	}

	c.Locals("profile", &profile)

	return tokenClaim, profile
}
