package handler

import (
	"errors"
	"fmt"
	"time"

	"leevienna_shop/helper"
	"leevienna_shop/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
)

// UploadFile pushes one multipart file to Cloudinary and returns the hosted
// URL with the original file metadata. Chat image attachments and catalog
// photos both come through here.
func UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No file provided", err)
	}

	if file.Size > 10*1024*1024 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File exceeds 10MB", errors.New("file too large"))
	}

	f, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
	}
	defer f.Close()

	cld := helper.InitCloudinary()
	publicId := fmt.Sprintf("%s_%d", slug.Make(file.Filename), time.Now().UnixNano())
	result, err := cld.Upload.Upload(c.Context(), f, uploader.UploadParams{
		Folder:   "product-images",
		PublicID: publicId,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"url":      result.SecureURL,
		"filename": file.Filename,
		"size":     file.Size,
		"type":     file.Header.Get("Content-Type"),
	})
}
