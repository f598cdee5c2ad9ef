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

type BillController struct {
	DB      *gorm.DB
	Service *service.BillService
}

func NewBillController(db *gorm.DB, files storage.Storage) *BillController {
	return &BillController{DB: db, Service: service.NewBillService(db, files)}
}

// ===================== LIST =====================

// GET /api/public/bills?body=&q=&sort=&state_code=&page=&per_page=
func (h *BillController) List(c *fiber.Ctx) error {
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
	return helper.JsonList(c, "bills fetched", dto.FromBillRows(page), len(page), &pagination)
}

// GET /api/public/bills/suggestions?body=&q=
func (h *BillController) Suggestions(c *fiber.Ctx) error {
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

// GET /api/public/bills/:id
func (h *BillController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	row, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonOK(c, "bill fetched", dto.FromBillRow(row))
}

// GET /api/public/bills/:id/pdf
func (h *BillController) DownloadPDF(c *fiber.Ctx) error {
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

// ===================== CREATE =====================

// POST /api/a/bills  (JSON atau multipart dengan file "pdf")
func (h *BillController) Create(c *fiber.Ctx) error {
	var (
		req    dto.CreateBillRequest
		upload *storage.Upload
	)
	if isMultipart(c) {
		if err := bindBillForm(c, &req); err != nil {
			return writeError(c, err)
		}
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
	return helper.JsonCreated(c, "bill created", dto.FromBillRow(row))
}

func bindBillForm(c *fiber.Ctx, req *dto.CreateBillRequest) error {
	var err error
	req.BillName = formString(c, "bill_name")
	req.IntroducedBy = formString(c, "introduced_by")
	req.MinistryCode = formString(c, "ministry_code")
	req.LegislativeBody = formString(c, "legislative_body")
	req.StateCode = formOptString(c, "state_code")
	req.CurrentStatus = formString(c, "current_status")
	req.ApprovalResult = formString(c, "approval_result")
	req.IntroducedDate = formString(c, "introduced_date")
	if req.VotesFavour, err = formInt(c, "votes_favour"); err != nil {
		return err
	}
	if req.VotesAgainst, err = formInt(c, "votes_against"); err != nil {
		return err
	}
	req.IsMoneyBill, err = formBool(c, "is_money_bill")
	return err
}

// ===================== UPDATE =====================

// PATCH /api/a/bills/:id/status
func (h *BillController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateBillStatusRequest
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
	return helper.JsonUpdated(c, "bill status updated", dto.FromBillRow(row))
}

// ===================== DELETE =====================

// DELETE /api/a/bills/:id
func (h *BillController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	log.Printf("[INFO] admin deleted bill id=%d", id)
	return helper.JsonDeleted(c, "bill deleted", fiber.Map{"id": id})
}
