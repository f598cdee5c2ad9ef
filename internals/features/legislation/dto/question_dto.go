package dto

import (
	"strings"
	"time"

	"legisq_backend/internals/constants"
	"legisq_backend/internals/features/legislation/model"
	helper "legisq_backend/internals/helpers"
)

type CreateQuestionRequest struct {
	QuestionTitle   string  `json:"question_title" validate:"required,min=3,max=500"`
	IntroducedBy    string  `json:"introduced_by" validate:"max=200"`
	MinistryCode    string  `json:"ministry_code" validate:"required,len=2,alpha"`
	LegislativeBody string  `json:"legislative_body" validate:"required"`
	StateCode       *string `json:"state_code" validate:"omitempty,len=2,alpha"`
	QuestionType    string  `json:"q_type" validate:"required"`
	CurrentStatus   string  `json:"current_status"`
	IntroducedDate  string  `json:"introduced_date"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.QuestionTitle = strings.TrimSpace(r.QuestionTitle)
	r.IntroducedBy = strings.TrimSpace(r.IntroducedBy)
	r.MinistryCode = normalizeCode(r.MinistryCode)
	r.StateCode = normalizeStateCode(r.StateCode)
}

func (r *CreateQuestionRequest) ToModel(now time.Time) (*model.QuestionModel, error) {
	body, state, err := resolveBodyAndState(r.LegislativeBody, r.StateCode)
	if err != nil {
		return nil, err
	}

	qType, ok := constants.ParseQuestionType(r.QuestionType)
	if !ok {
		return nil, helper.NewFieldError("q_type", "must be Starred or Unstarred")
	}

	status := constants.QuestionStatusNotAnswered
	if strings.TrimSpace(r.CurrentStatus) != "" {
		s, ok := constants.ParseQuestionStatus(r.CurrentStatus)
		if !ok {
			return nil, helper.NewFieldError("current_status", "must be Answered or Not Answered")
		}
		status = s
	}

	date, err := resolveDate("introduced_date", r.IntroducedDate, now)
	if err != nil {
		return nil, err
	}

	return &model.QuestionModel{
		QuestionTitle:           r.QuestionTitle,
		QuestionIntroducedBy:    r.IntroducedBy,
		QuestionMinistryCode:    r.MinistryCode,
		QuestionLegislativeBody: body,
		QuestionStateCode:       state,
		QuestionType:            qType,
		QuestionCurrentStatus:   status,
		QuestionIntroducedDate:  date,
	}, nil
}

type UpdateQuestionStatusRequest struct {
	CurrentStatus string `json:"current_status" validate:"required"`
}

func (r *UpdateQuestionStatusRequest) Resolve() (string, error) {
	status, ok := constants.ParseQuestionStatus(r.CurrentStatus)
	if !ok {
		return "", helper.NewFieldError("current_status", "must be Answered or Not Answered")
	}
	return status, nil
}

type QuestionResponse struct {
	ID              uint    `json:"id"`
	QuestionCode    string  `json:"question_code"`
	QuestionTitle   string  `json:"question_title"`
	IntroducedBy    string  `json:"introduced_by"`
	MinistryCode    string  `json:"ministry_code"`
	MinistryName    string  `json:"ministry_name"`
	LegislativeBody string  `json:"legislative_body"`
	StateCode       *string `json:"state_code"`
	StateName       *string `json:"state_name"`
	QuestionType    string  `json:"q_type"`
	CurrentStatus   string  `json:"current_status"`
	HasPDF          bool    `json:"has_pdf"`
	IntroducedDate  string  `json:"introduced_date"`
}

func FromQuestionRow(r *model.QuestionRow) QuestionResponse {
	return QuestionResponse{
		ID:              r.QuestionID,
		QuestionCode:    r.QuestionCode,
		QuestionTitle:   r.QuestionTitle,
		IntroducedBy:    r.QuestionIntroducedBy,
		MinistryCode:    r.QuestionMinistryCode,
		MinistryName:    r.MinistryName,
		LegislativeBody: r.QuestionLegislativeBody,
		StateCode:       r.QuestionStateCode,
		StateName:       r.StateName,
		QuestionType:    r.QuestionType,
		CurrentStatus:   r.QuestionCurrentStatus,
		HasPDF:          strOrEmpty(r.QuestionPDFPath) != "",
		IntroducedDate:  r.QuestionIntroducedDate,
	}
}

func FromQuestionRows(rows []model.QuestionRow) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromQuestionRow(&rows[i]))
	}
	return out
}
