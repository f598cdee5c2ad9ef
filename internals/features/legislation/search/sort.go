package search

import (
	"cmp"
	"slices"
	"strings"

	"legisq_backend/internals/constants"
	"legisq_backend/internals/features/legislation/model"
)

type SortOrder string

const (
	SortDate   SortOrder = "date"
	SortStatus SortOrder = "status"
	SortName   SortOrder = "name"
	SortType   SortOrder = "type"
)

// ParseSort: nilai tak dikenal → urut tanggal (default).
func ParseSort(s string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortStatus:
		return SortStatus
	case SortName, "title":
		return SortName
	case SortType:
		return SortType
	default:
		return SortDate
	}
}

var (
	billStatusRank = map[string]int{
		constants.BillStatusPassed:    0,
		constants.BillStatusPending:   1,
		constants.BillStatusNotPassed: 2,
	}
	questionStatusRank = map[string]int{
		constants.QuestionStatusAnswered:    0,
		constants.QuestionStatusNotAnswered: 1,
	}
)

func rank(m map[string]int, status string) int {
	if r, ok := m[status]; ok {
		return r
	}
	return len(m)
}

// SortBills mengembalikan salinan terurut (stable); input tidak diubah.
// SortType tidak berlaku untuk bill, diperlakukan sebagai urut tanggal.
func SortBills(rows []model.BillRow, order SortOrder) []model.BillRow {
	out := slices.Clone(rows)
	switch order {
	case SortStatus:
		slices.SortStableFunc(out, func(a, b model.BillRow) int {
			return cmp.Compare(rank(billStatusRank, a.BillCurrentStatus), rank(billStatusRank, b.BillCurrentStatus))
		})
	case SortName:
		slices.SortStableFunc(out, func(a, b model.BillRow) int {
			return cmp.Compare(a.BillName, b.BillName)
		})
	default:
		slices.SortStableFunc(out, func(a, b model.BillRow) int {
			return cmp.Compare(b.BillIntroducedDate, a.BillIntroducedDate)
		})
	}
	return out
}

// SortQuestions: date (default), status (Answered dulu), type (Starred dulu).
func SortQuestions(rows []model.QuestionRow, order SortOrder) []model.QuestionRow {
	out := slices.Clone(rows)
	switch order {
	case SortStatus:
		slices.SortStableFunc(out, func(a, b model.QuestionRow) int {
			return cmp.Compare(rank(questionStatusRank, a.QuestionCurrentStatus), rank(questionStatusRank, b.QuestionCurrentStatus))
		})
	case SortType:
		slices.SortStableFunc(out, func(a, b model.QuestionRow) int {
			return cmp.Compare(a.QuestionType, b.QuestionType)
		})
	case SortName:
		slices.SortStableFunc(out, func(a, b model.QuestionRow) int {
			return cmp.Compare(a.QuestionTitle, b.QuestionTitle)
		})
	default:
		slices.SortStableFunc(out, func(a, b model.QuestionRow) int {
			return cmp.Compare(b.QuestionIntroducedDate, a.QuestionIntroducedDate)
		})
	}
	return out
}
