package helper

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// ParseIDParam membaca :id sebagai bilangan bulat positif.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// ErrBadForm: body multipart rusak atau tidak bisa diparse.
var ErrBadForm = errors.New("malformed multipart form")

// OptionalFormFile: field file yang tidak dikirim → (nil, nil).
// Error parse lain dibungkus ErrBadForm supaya controller membalas 400.
func OptionalFormFile(c *fiber.Ctx, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, fasthttp.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadForm, err)
	}
	return fh, nil
}
