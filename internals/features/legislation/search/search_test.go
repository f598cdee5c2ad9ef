package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"legisq_backend/internals/constants"
	"legisq_backend/internals/features/legislation/model"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		query  string
		fields []string
		want   bool
	}{
		{"", []string{"anything"}, true},
		{"   ", []string{"anything"}, true},
		{"finance", []string{"BL-FN-1234", "Finance Reform Act", "Finance"}, true},
		{"FN-12", []string{"BL-FN-1234"}, true},
		{"reform", []string{"BL-FN-1234", "finance reform act"}, true},
		{"health", []string{"BL-FN-1234", "Finance Reform Act", "Finance"}, false},
		{" Finance ", []string{"finance"}, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Matches(tt.query, tt.fields...), "query=%q", tt.query)
	}
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%finance%", LikePattern("  Finance "))
	assert.Equal(t, `%50\%%`, LikePattern("50%"))
	assert.Equal(t, `%a\_b%`, LikePattern("a_b"))
	assert.Equal(t, `%c:\\x%`, LikePattern(`C:\x`))
	assert.Equal(t, "%%", LikePattern(""))
}

func TestShouldSuggest(t *testing.T) {
	assert.False(t, ShouldSuggest(""))
	assert.False(t, ShouldSuggest(" f "))
	assert.True(t, ShouldSuggest("fi"))
}

func TestSuggestionsDedupeAndSort(t *testing.T) {
	rows := []SuggestionRow{
		{Code: "BL-FN-2000", Name: "Tax Act", MinistryName: "Finance"},
		{Code: "BL-FN-1000", Name: "Finance Reform Act", MinistryName: "Finance"},
	}
	got := Suggestions(rows)
	assert.Equal(t, []string{"BL-FN-1000", "BL-FN-2000", "Finance", "Finance Reform Act", "Tax Act"}, got)
	assert.Empty(t, Suggestions(nil))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, Paginate(items, 0, 2))
	assert.Equal(t, []int{5}, Paginate(items, 4, 2))
	assert.Equal(t, []int{}, Paginate(items, 10, 2))
	assert.Equal(t, items, Paginate(items, 0, 0))
}

func bill(id uint, name, status, date string) model.BillRow {
	return model.BillRow{BillModel: model.BillModel{
		BillID: id, BillName: name, BillCurrentStatus: status, BillIntroducedDate: date,
	}}
}

func ids(rows []model.BillRow) []uint {
	out := make([]uint, len(rows))
	for i, r := range rows {
		out[i] = r.BillID
	}
	return out
}

func TestSortBills(t *testing.T) {
	rows := []model.BillRow{
		bill(1, "Water Act", constants.BillStatusPending, "2024-03-01"),
		bill(2, "Budget Act", constants.BillStatusNotPassed, "2024-05-01"),
		bill(3, "Agri Act", constants.BillStatusPassed, "2024-01-01"),
		bill(4, "Coal Act", constants.BillStatusPending, "2024-05-01"),
		bill(5, "Defence Act", constants.BillStatusPassed, "2024-02-01"),
	}
	before := ids(rows)

	assert.Equal(t, []uint{3, 5, 1, 4, 2}, ids(SortBills(rows, SortStatus)), "passed > pending > not passed, stable")
	assert.Equal(t, []uint{3, 2, 4, 5, 1}, ids(SortBills(rows, SortName)))
	assert.Equal(t, []uint{2, 4, 1, 5, 3}, ids(SortBills(rows, SortDate)), "ties keep input order")
	assert.Equal(t, before, ids(rows), "input must not be mutated")
}

func TestSortQuestions(t *testing.T) {
	q := func(id uint, typ, status string) model.QuestionRow {
		return model.QuestionRow{QuestionModel: model.QuestionModel{
			QuestionID: id, QuestionType: typ, QuestionCurrentStatus: status, QuestionIntroducedDate: "2024-01-01",
		}}
	}
	rows := []model.QuestionRow{
		q(1, constants.QuestionTypeUnstarred, constants.QuestionStatusNotAnswered),
		q(2, constants.QuestionTypeStarred, constants.QuestionStatusAnswered),
		q(3, constants.QuestionTypeUnstarred, constants.QuestionStatusAnswered),
		q(4, constants.QuestionTypeStarred, constants.QuestionStatusNotAnswered),
	}
	idsOf := func(rs []model.QuestionRow) []uint {
		out := make([]uint, len(rs))
		for i, r := range rs {
			out[i] = r.QuestionID
		}
		return out
	}

	assert.Equal(t, []uint{2, 3, 1, 4}, idsOf(SortQuestions(rows, SortStatus)))
	assert.Equal(t, []uint{2, 4, 1, 3}, idsOf(SortQuestions(rows, SortType)))
	assert.Equal(t, []uint{1, 2, 3, 4}, idsOf(rows))
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortDate, ParseSort(""))
	assert.Equal(t, SortDate, ParseSort("bogus"))
	assert.Equal(t, SortStatus, ParseSort("Status"))
	assert.Equal(t, SortName, ParseSort("title"))
	assert.Equal(t, SortType, ParseSort("type"))
}
