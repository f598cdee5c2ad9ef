package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"legisq_backend/internals/configs"
	helper "legisq_backend/internals/helpers"
	"legisq_backend/internals/helpers/storage"
)

const pdfField = "pdf"

func isMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}

func formString(c *fiber.Ctx, key string) string {
	return strings.TrimSpace(c.FormValue(key))
}

func formOptString(c *fiber.Ctx, key string) *string {
	if v := formString(c, key); v != "" {
		return &v
	}
	return nil
}

func formInt(c *fiber.Ctx, key string) (int, error) {
	v := formString(c, key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, helper.NewFieldError(key, "must be a whole number")
	}
	return n, nil
}

func formBool(c *fiber.Ctx, key string) (bool, error) {
	v := strings.ToLower(formString(c, key))
	switch v {
	case "", "0", "false", "no", "off":
		return false, nil
	case "1", "true", "yes", "on":
		return true, nil
	default:
		return false, helper.NewFieldError(key, "must be true or false")
	}
}

// readPDF mengambil field "pdf" (opsional) dari multipart.
func readPDF(c *fiber.Ctx) (*storage.Upload, error) {
	fh, err := helper.OptionalFormFile(c, pdfField)
	if err != nil || fh == nil {
		return nil, err
	}
	return storage.ReadUpload(fh, configs.MaxUploadBytes)
}

// uploadError menulis response untuk error baca/validasi upload.
func uploadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, helper.ErrBadForm):
		return helper.JsonError(c, fiber.StatusBadRequest, "malformed multipart form")
	case errors.Is(err, storage.ErrTooLarge):
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "pdf exceeds upload limit")
	case errors.Is(err, storage.ErrNotPDF):
		return helper.JsonValidationError(c, map[string][]string{pdfField: {"must be a PDF document"}})
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "failed to read uploaded pdf")
	}
}

// writeError: FieldError → 422, sisanya lewat mapping taksonomi store.
func writeError(c *fiber.Ctx, err error) error {
	return helper.JsonStoreError(c, err)
}
