package dto

import "legisq_backend/internals/features/metadata/model"

type CreateCodeNameRequest struct {
	Code string `json:"code" form:"code" validate:"required,len=2,alpha"`
	Name string `json:"name" form:"name" validate:"required,min=2,max=200"`
}

type MinistryResponse struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type StateResponse struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func FromMinistryModel(m *model.MinistryModel) MinistryResponse {
	return MinistryResponse{ID: m.MinistryID, Code: m.MinistryCode, Name: m.MinistryName}
}

func FromMinistryModels(rows []model.MinistryModel) []MinistryResponse {
	out := make([]MinistryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromMinistryModel(&rows[i]))
	}
	return out
}

func FromStateModel(m *model.StateModel) StateResponse {
	return StateResponse{ID: m.StateID, Code: m.StateCode, Name: m.StateName}
}

func FromStateModels(rows []model.StateModel) []StateResponse {
	out := make([]StateResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromStateModel(&rows[i]))
	}
	return out
}
