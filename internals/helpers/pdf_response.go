package helper

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"legisq_backend/internals/constants"
)

// SendPDF men-stream dokumen sebagai attachment; fasthttp menutup reader setelah selesai.
func SendPDF(c *fiber.Ctx, rc io.ReadCloser, filename string) error {
	c.Set(fiber.HeaderContentType, constants.MimePDF)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.SendStream(rc)
}
