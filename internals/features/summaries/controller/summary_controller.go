package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"legisq_backend/internals/features/legislation/repository"
	"legisq_backend/internals/features/summaries/service"
	helper "legisq_backend/internals/helpers"
)

type SummaryController struct {
	DB         *gorm.DB
	Summarizer *service.Summarizer
}

func NewSummaryController(db *gorm.DB, s *service.Summarizer) *SummaryController {
	return &SummaryController{DB: db, Summarizer: s}
}

// GET /api/public/bills/:id/summary
func (h *SummaryController) BillSummary(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	row, err := repository.FindBillByID(c.UserContext(), h.DB, id)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return h.respond(c, row.BillPDFPath)
}

// GET /api/public/questions/:id/summary
func (h *SummaryController) QuestionSummary(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	row, err := repository.FindQuestionByID(c.UserContext(), h.DB, id)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return h.respond(c, row.QuestionPDFPath)
}

func (h *SummaryController) respond(c *fiber.Ctx, pdfPath *string) error {
	if h.Summarizer == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "summarization is not configured")
	}
	path := ""
	if pdfPath != nil {
		path = *pdfPath
	}
	out, err := h.Summarizer.Summarize(c.UserContext(), path)
	switch {
	case err == nil:
		return helper.JsonOK(c, "summary generated", out)
	case errors.Is(err, service.ErrNoDocument):
		return helper.JsonError(c, fiber.StatusNotFound, "no PDF document available for summarization")
	case errors.Is(err, service.ErrTextTooShort):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "the extracted PDF text is too short to summarize")
	default:
		return helper.JsonError(c, fiber.StatusBadGateway, "summary provider failed, try again later")
	}
}
