package handler

import (
	"errors"

	"leevienna_shop/constants"
	"leevienna_shop/database"
	"leevienna_shop/helper"
	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

var adminGate = helper.NewAdminGate()

// Register creates the profile row on first authentication.
func Register(c *fiber.Ctx) error {
	input := c.Locals("RegisterInput").(model.RegisterInput)

	existing, err := helper.GetProfileByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Email already registered", errors.New("email exists"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var profile model.UserProfile
	copier.Copy(&profile, &input)
	profile.PasswordHash = hash

	if err := database.DB.Create(&profile).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create account", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"id":    profile.ID,
		"email": profile.Email,
	})
}

func Login(c *fiber.Ctx) error {
	input := c.Locals("LoginInput").(model.LoginInput)

	profile, err := helper.GetProfileByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if profile == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_EMAIL, errors.New("email not registered"))
	}

	if !helper.CheckPasswordHash(input.Password, profile.PasswordHash) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_PASSWORD, errors.New("password does not match email"))
	}

	tokenClaim := model.TokenClaim{
		UserId: profile.ID,
		Email:  profile.Email,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	// isAdmin hint lets the front-end redirect straight to the back office.
	isAdmin := adminGate.ResolveIsAdmin(profile.ID, profile.Email)

	return c.JSON(fiber.Map{
		"message": "login success",
		"user": fiber.Map{
			"id":       profile.ID,
			"email":    profile.Email,
			"fullName": profile.FullName,
			"isAdmin":  isAdmin,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refresh := c.Cookies("refresh_token")
	if refresh == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.BodyParser(&body); err == nil {
			refresh = body.RefreshToken
		}
	}
	if refresh == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing refresh token", errors.New("no token"))
	}

	token, err := helper.ParseToken(refresh)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	c.Locals("user", token)
	userId, email := helper.ClaimsFromLocals(c)
	if userId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("no identity in token"))
	}

	access, err := helper.GenerateAccessToken(model.TokenClaim{UserId: userId, Email: email})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: access, RefreshToken: refresh})
}

func Me(c *fiber.Ctx) error {
	_, profile := helper.GetInfoUserFromToken(c)
	if profile.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("no profile"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, profile)
}

// EditProfile upserts contact details collected at first checkout.
func EditProfile(c *fiber.Ctx) error {
	_, profile := helper.GetInfoUserFromToken(c)
	if profile.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("no profile"))
	}

	input := c.Locals("EditProfileInput").(model.EditProfileInput)
	if input.FullName != nil {
		profile.FullName = input.FullName
	}
	if input.Phone != nil {
		profile.Phone = input.Phone
	}

	if err := database.DB.Save(&profile).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update profile", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, profile)
}

func Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token", "refresh_token")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "logged out"})
}
