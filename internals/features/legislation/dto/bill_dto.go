package dto

import (
	"strings"
	"time"

	"legisq_backend/internals/constants"
	"legisq_backend/internals/features/legislation/model"
	helper "legisq_backend/internals/helpers"
)

/* ===================== REQUEST ===================== */

type CreateBillRequest struct {
	BillName        string  `json:"bill_name" validate:"required,min=3,max=500"`
	IntroducedBy    string  `json:"introduced_by" validate:"max=200"`
	MinistryCode    string  `json:"ministry_code" validate:"required,len=2,alpha"`
	LegislativeBody string  `json:"legislative_body" validate:"required"`
	StateCode       *string `json:"state_code" validate:"omitempty,len=2,alpha"`
	VotesFavour     int     `json:"votes_favour" validate:"min=0"`
	VotesAgainst    int     `json:"votes_against" validate:"min=0"`
	CurrentStatus   string  `json:"current_status"`
	ApprovalResult  string  `json:"approval_result"`
	IsMoneyBill     bool    `json:"is_money_bill"`
	IntroducedDate  string  `json:"introduced_date"`
}

func (r *CreateBillRequest) Normalize() {
	r.BillName = strings.TrimSpace(r.BillName)
	r.IntroducedBy = strings.TrimSpace(r.IntroducedBy)
	r.MinistryCode = normalizeCode(r.MinistryCode)
	r.StateCode = normalizeStateCode(r.StateCode)
}

// ToModel menerapkan aturan domain: state iff State Assembly, money bill
// selalu false untuk Rajya Sabha, approval_status diturunkan dari body.
func (r *CreateBillRequest) ToModel(now time.Time) (*model.BillModel, error) {
	body, state, err := resolveBodyAndState(r.LegislativeBody, r.StateCode)
	if err != nil {
		return nil, err
	}

	status := constants.BillStatusPending
	if strings.TrimSpace(r.CurrentStatus) != "" {
		s, ok := constants.ParseBillStatus(r.CurrentStatus)
		if !ok {
			return nil, helper.NewFieldError("current_status", "must be one of Pending, Passed, Not Passed")
		}
		status = s
	}

	approval := constants.ApprovalResultPending
	if strings.TrimSpace(r.ApprovalResult) != "" {
		a, ok := constants.ParseApprovalResult(r.ApprovalResult)
		if !ok {
			return nil, helper.NewFieldError("approval_result", "must be one of Pending, Yes, No")
		}
		approval = a
	}

	date, err := resolveDate("introduced_date", r.IntroducedDate, now)
	if err != nil {
		return nil, err
	}

	return &model.BillModel{
		BillName:            r.BillName,
		BillIntroducedBy:    r.IntroducedBy,
		BillMinistryCode:    r.MinistryCode,
		BillLegislativeBody: body,
		BillStateCode:       state,
		BillVotesFavour:     r.VotesFavour,
		BillVotesAgainst:    r.VotesAgainst,
		BillCurrentStatus:   status,
		BillApprovalStatus:  constants.ApprovalStatusFor(body),
		BillApprovalResult:  approval,
		BillIsMoneyBill:     r.IsMoneyBill && body != constants.BodyRajyaSabha,
		BillIntroducedDate:  date,
	}, nil
}

type UpdateBillStatusRequest struct {
	CurrentStatus  string  `json:"current_status" validate:"required"`
	ApprovalResult *string `json:"approval_result"`
}

// Resolve mengembalikan nilai tersimpan (kanonik) dari input bebas.
func (r *UpdateBillStatusRequest) Resolve() (string, *string, error) {
	status, ok := constants.ParseBillStatus(r.CurrentStatus)
	if !ok {
		return "", nil, helper.NewFieldError("current_status", "must be one of Pending, Passed, Not Passed")
	}
	if r.ApprovalResult == nil || strings.TrimSpace(*r.ApprovalResult) == "" {
		return status, nil, nil
	}
	a, ok := constants.ParseApprovalResult(*r.ApprovalResult)
	if !ok {
		return "", nil, helper.NewFieldError("approval_result", "must be one of Pending, Yes, No")
	}
	return status, &a, nil
}

/* ===================== RESPONSE ===================== */

type BillResponse struct {
	ID              uint    `json:"id"`
	BillCode        string  `json:"bill_code"`
	BillName        string  `json:"bill_name"`
	IntroducedBy    string  `json:"introduced_by"`
	MinistryCode    string  `json:"ministry_code"`
	MinistryName    string  `json:"ministry_name"`
	LegislativeBody string  `json:"legislative_body"`
	StateCode       *string `json:"state_code"`
	StateName       *string `json:"state_name"`
	VotesFavour     int     `json:"votes_favour"`
	VotesAgainst    int     `json:"votes_against"`
	CurrentStatus   string  `json:"current_status"`
	ApprovalStatus  string  `json:"approval_status"`
	ApprovalResult  string  `json:"approval_result"`
	IsMoneyBill     bool    `json:"is_money_bill"`
	HasPDF          bool    `json:"has_pdf"`
	IntroducedDate  string  `json:"introduced_date"`
}

func FromBillRow(r *model.BillRow) BillResponse {
	return BillResponse{
		ID:              r.BillID,
		BillCode:        r.BillCode,
		BillName:        r.BillName,
		IntroducedBy:    r.BillIntroducedBy,
		MinistryCode:    r.BillMinistryCode,
		MinistryName:    r.MinistryName,
		LegislativeBody: r.BillLegislativeBody,
		StateCode:       r.BillStateCode,
		StateName:       r.StateName,
		VotesFavour:     r.BillVotesFavour,
		VotesAgainst:    r.BillVotesAgainst,
		CurrentStatus:   r.BillCurrentStatus,
		ApprovalStatus:  r.BillApprovalStatus,
		ApprovalResult:  r.BillApprovalResult,
		IsMoneyBill:     r.BillIsMoneyBill,
		HasPDF:          strOrEmpty(r.BillPDFPath) != "",
		IntroducedDate:  r.BillIntroducedDate,
	}
}

func FromBillRows(rows []model.BillRow) []BillResponse {
	out := make([]BillResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromBillRow(&rows[i]))
	}
	return out
}
