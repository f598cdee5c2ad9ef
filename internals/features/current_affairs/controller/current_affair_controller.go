package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"legisq_backend/internals/configs"
	"legisq_backend/internals/features/current_affairs/dto"
	"legisq_backend/internals/features/current_affairs/service"
	"legisq_backend/internals/features/legislation/search"
	helper "legisq_backend/internals/helpers"
	"legisq_backend/internals/helpers/storage"
)

type CurrentAffairController struct {
	DB      *gorm.DB
	Service *service.CurrentAffairService
}

func NewCurrentAffairController(db *gorm.DB, files storage.Storage) *CurrentAffairController {
	return &CurrentAffairController{DB: db, Service: service.NewCurrentAffairService(db, files)}
}

// GET /api/public/current-affairs?q=&page=&per_page=
func (h *CurrentAffairController) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	rows, err := h.Service.List(c.UserContext(), q)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	paging := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	page := search.Paginate(rows, paging.Offset, paging.Limit)
	pagination := helper.BuildPaginationFromPage(int64(len(rows)), paging.Page, paging.PerPage)
	return helper.JsonList(c, "current affairs fetched", dto.FromModels(page), len(page), &pagination)
}

// GET /api/public/current-affairs/:id/pdf
func (h *CurrentAffairController) DownloadPDF(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	rc, name, err := h.Service.OpenDocument(c.UserContext(), id)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.SendPDF(c, rc, name)
}

// POST /api/a/current-affairs  (JSON atau multipart: title, description, url, published_date, pdf)
func (h *CurrentAffairController) Create(c *fiber.Ctx) error {
	var (
		req    dto.CreateCurrentAffairRequest
		upload *storage.Upload
	)
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	if strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		req.Title = c.FormValue("title")
		req.Description = c.FormValue("description")
		if u := strings.TrimSpace(c.FormValue("url")); u != "" {
			req.URL = &u
		}
		req.PublishedDate = c.FormValue("published_date")

		fh, err := helper.OptionalFormFile(c, "pdf")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "malformed multipart form")
		}
		if fh != nil {
			u, err := storage.ReadUpload(fh, configs.MaxUploadBytes)
			switch {
			case errors.Is(err, storage.ErrTooLarge):
				return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "pdf exceeds upload limit")
			case errors.Is(err, storage.ErrNotPDF):
				return helper.JsonValidationError(c, map[string][]string{"pdf": {"must be a PDF document"}})
			case err != nil:
				return helper.JsonError(c, fiber.StatusBadRequest, "failed to read uploaded pdf")
			}
			upload = u
		}
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	m, err := h.Service.Create(c.UserContext(), &req, upload)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonCreated(c, "current affair created", dto.FromModel(m))
}

// DELETE /api/a/current-affairs/:id
func (h *CurrentAffairController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return helper.JsonStoreError(c, err)
	}
	log.Printf("[INFO] admin deleted current affair id=%d", id)
	return helper.JsonDeleted(c, "current affair deleted", fiber.Map{"id": id})
}
