package dto

import (
	"strings"
	"time"

	"legisq_backend/internals/constants"
	"legisq_backend/internals/features/current_affairs/model"
	helper "legisq_backend/internals/helpers"
)

type CreateCurrentAffairRequest struct {
	Title         string  `json:"title" validate:"required,min=3,max=300"`
	Description   string  `json:"description" validate:"required"`
	URL           *string `json:"url" validate:"omitempty,url"`
	PublishedDate string  `json:"published_date"`
}

func (r *CreateCurrentAffairRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	if r.URL != nil {
		u := strings.TrimSpace(*r.URL)
		if u == "" {
			r.URL = nil
		} else {
			r.URL = &u
		}
	}
}

func (r *CreateCurrentAffairRequest) ToModel(now time.Time) (*model.CurrentAffairModel, error) {
	if r.Title == "" {
		return nil, helper.NewFieldError("title", "is required")
	}
	if r.Description == "" {
		return nil, helper.NewFieldError("description", "is required")
	}
	date := now.Format(constants.DateLayout)
	if raw := strings.TrimSpace(r.PublishedDate); raw != "" {
		t, err := time.Parse(constants.DateLayout, raw)
		if err != nil {
			return nil, helper.NewFieldError("published_date", "must be a date in YYYY-MM-DD format")
		}
		date = t.Format(constants.DateLayout)
	}
	return &model.CurrentAffairModel{
		CurrentAffairTitle:         r.Title,
		CurrentAffairDescription:   r.Description,
		CurrentAffairURL:           r.URL,
		CurrentAffairPublishedDate: date,
	}, nil
}

type ListQuery struct {
	Q string `query:"q"`
}

type CurrentAffairResponse struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	URL           *string `json:"url"`
	HasPDF        bool    `json:"has_pdf"`
	PublishedDate string  `json:"published_date"`
}

func FromModel(m *model.CurrentAffairModel) CurrentAffairResponse {
	return CurrentAffairResponse{
		ID:            m.CurrentAffairID,
		Title:         m.CurrentAffairTitle,
		Description:   m.CurrentAffairDescription,
		URL:           m.CurrentAffairURL,
		HasPDF:        m.CurrentAffairPDFPath != nil && *m.CurrentAffairPDFPath != "",
		PublishedDate: m.CurrentAffairPublishedDate,
	}
}

func FromModels(rows []model.CurrentAffairModel) []CurrentAffairResponse {
	out := make([]CurrentAffairResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
