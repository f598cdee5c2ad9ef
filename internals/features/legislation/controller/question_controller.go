package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"legisq_backend/internals/features/legislation/dto"
	"legisq_backend/internals/features/legislation/search"
	"legisq_backend/internals/features/legislation/service"
	helper "legisq_backend/internals/helpers"
	"legisq_backend/internals/helpers/storage"
)

type QuestionController struct {
	DB      *gorm.DB
	Service *service.QuestionService
}

func NewQuestionController(db *gorm.DB, files storage.Storage) *QuestionController {
	return &QuestionController{DB: db, Service: service.NewQuestionService(db, files)}
}

// GET /api/public/questions?body=&q=&sort=&state_code=&page=&per_page=
func (h *QuestionController) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	rows, err := h.Service.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}

	paging := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	page := search.Paginate(rows, paging.Offset, paging.Limit)
	pagination := helper.BuildPaginationFromPage(int64(len(rows)), paging.Page, paging.PerPage)
	return helper.JsonList(c, "questions fetched", dto.FromQuestionRows(page), len(page), &pagination)
}

// GET /api/public/questions/suggestions?body=&q=
func (h *QuestionController) Suggestions(c *fiber.Ctx) error {
	var q dto.SuggestQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	out, err := h.Service.Suggest(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonOK(c, "suggestions", out)
}

// GET /api/public/questions/:id
func (h *QuestionController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	row, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonOK(c, "question fetched", dto.FromQuestionRow(row))
}

// GET /api/public/questions/:id/pdf
func (h *QuestionController) DownloadPDF(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	rc, name, err := h.Service.OpenDocument(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return helper.SendPDF(c, rc, name)
}

// POST /api/a/questions
func (h *QuestionController) Create(c *fiber.Ctx) error {
	var (
		req    dto.CreateQuestionRequest
		upload *storage.Upload
	)
	if isMultipart(c) {
		bindQuestionForm(c, &req)
		u, err := readPDF(c)
		if err != nil {
			return uploadError(c, err)
		}
		upload = u
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	row, err := h.Service.Create(c.UserContext(), &req, upload)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonCreated(c, "question created", dto.FromQuestionRow(row))
}

func bindQuestionForm(c *fiber.Ctx, req *dto.CreateQuestionRequest) {
	req.QuestionTitle = formString(c, "question_title")
	req.IntroducedBy = formString(c, "introduced_by")
	req.MinistryCode = formString(c, "ministry_code")
	req.LegislativeBody = formString(c, "legislative_body")
	req.StateCode = formOptString(c, "state_code")
	req.QuestionType = formString(c, "q_type")
	req.CurrentStatus = formString(c, "current_status")
	req.IntroducedDate = formString(c, "introduced_date")
}

// PATCH /api/a/questions/:id/status
func (h *QuestionController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateQuestionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	row, err := h.Service.UpdateStatus(c.UserContext(), id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonUpdated(c, "question status updated", dto.FromQuestionRow(row))
}

// DELETE /api/a/questions/:id
func (h *QuestionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	log.Printf("[INFO] admin deleted question id=%d", id)
	return helper.JsonDeleted(c, "question deleted", fiber.Map{"id": id})
}
