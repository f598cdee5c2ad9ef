package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"legisq_backend/internals/features/metadata/dto"
	"legisq_backend/internals/features/metadata/repository"
	helper "legisq_backend/internals/helpers"
	"legisq_backend/internals/middlewares/metrics"
)

type MetadataController struct {
	DB *gorm.DB
}

func NewMetadataController(db *gorm.DB) *MetadataController {
	return &MetadataController{DB: db}
}

func parseCodeName(c *fiber.Ctx) (*dto.CreateCodeNameRequest, error) {
	var req dto.CreateCodeNameRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Name = strings.TrimSpace(req.Name)
	if errs := helper.ValidateStruct(&req); errs != nil {
		return nil, helper.JsonValidationError(c, errs)
	}
	return &req, nil
}

// ===================== MINISTRIES =====================

// GET /api/public/ministries
func (h *MetadataController) ListMinistries(c *fiber.Ctx) error {
	rows, err := repository.ListMinistries(c.UserContext(), h.DB)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonOK(c, "ministries fetched", dto.FromMinistryModels(rows))
}

// POST /api/a/ministries
func (h *MetadataController) CreateMinistry(c *fiber.Ctx) error {
	req, resp := parseCodeName(c)
	if req == nil {
		return resp
	}
	m, err := repository.InsertMinistry(c.UserContext(), h.DB, req.Code, req.Name)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	metrics.RecordsCreated.WithLabelValues("ministry").Inc()
	log.Printf("[INFO] ministry created code=%s", m.MinistryCode)
	return helper.JsonCreated(c, "ministry created", dto.FromMinistryModel(m))
}

// DELETE /api/a/ministries/:id
func (h *MetadataController) DeleteMinistry(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := repository.DeleteMinistry(c.UserContext(), h.DB, id); err != nil {
		return helper.JsonStoreError(c, err)
	}
	log.Printf("[INFO] ministry deleted id=%d", id)
	return helper.JsonDeleted(c, "ministry deleted", fiber.Map{"id": id})
}

// ===================== STATES =====================

// GET /api/public/states
func (h *MetadataController) ListStates(c *fiber.Ctx) error {
	rows, err := repository.ListStates(c.UserContext(), h.DB)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonOK(c, "states fetched", dto.FromStateModels(rows))
}

// POST /api/a/states
func (h *MetadataController) CreateState(c *fiber.Ctx) error {
	req, resp := parseCodeName(c)
	if req == nil {
		return resp
	}
	s, err := repository.InsertState(c.UserContext(), h.DB, req.Code, req.Name)
	if err != nil {
		return helper.JsonStoreError(c, err)
	}
	metrics.RecordsCreated.WithLabelValues("state").Inc()
	log.Printf("[INFO] state created code=%s", s.StateCode)
	return helper.JsonCreated(c, "state created", dto.FromStateModel(s))
}

// DELETE /api/a/states/:id
func (h *MetadataController) DeleteState(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := repository.DeleteState(c.UserContext(), h.DB, id); err != nil {
		return helper.JsonStoreError(c, err)
	}
	log.Printf("[INFO] state deleted id=%d", id)
	return helper.JsonDeleted(c, "state deleted", fiber.Map{"id": id})
}
