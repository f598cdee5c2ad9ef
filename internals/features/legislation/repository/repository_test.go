package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"legisq_backend/internals/constants"
	database "legisq_backend/internals/databases"
	"legisq_backend/internals/features/legislation/model"
	"legisq_backend/internals/features/records"
	helper "legisq_backend/internals/helpers"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, db.Exec(`INSERT INTO ministries (code, name) VALUES ('FN', 'Finance'), ('HM', 'Home Affairs'), ('ED', 'Education')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO states (code, name) VALUES ('KA', 'Karnataka'), ('TN', 'Tamil Nadu')`).Error)
	return db
}

func strPtr(s string) *string { return &s }

func newBill(code, name, ministry, body string, state *string, date string) *model.BillModel {
	return &model.BillModel{
		BillCode:            code,
		BillName:            name,
		BillMinistryCode:    ministry,
		BillLegislativeBody: body,
		BillStateCode:       state,
		BillCurrentStatus:   constants.BillStatusPending,
		BillApprovalStatus:  constants.ApprovalStatusFor(body),
		BillApprovalResult:  constants.ApprovalResultPending,
		BillIntroducedDate:  date,
	}
}

func TestInsertAndListBills(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	require.NoError(t, InsertBill(ctx, db, newBill("BL-FN-1234", "Finance Reform Act", "FN", constants.BodyLokSabha, nil, "2024-02-01")))
	require.NoError(t, InsertBill(ctx, db, newBill("BL-HM-2000", "Police Act", "HM", constants.BodyLokSabha, nil, "2024-03-01")))
	require.NoError(t, InsertBill(ctx, db, newBill("BL-ED-3000", "School Act", "ED", constants.BodyRajyaSabha, nil, "2024-04-01")))
	require.NoError(t, InsertBill(ctx, db, newBill("KA-FN-4000", "Karnataka Budget", "FN", constants.BodyStateAssembly, strPtr("KA"), "2024-01-01")))

	rows, err := ListBills(ctx, db, Filter{Body: constants.BodyLokSabha})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "BL-HM-2000", rows[0].BillCode, "newest first")
	assert.Equal(t, "Home Affairs", rows[0].MinistryName)
	assert.Nil(t, rows[0].StateName)

	rows, err = ListBills(ctx, db, Filter{Body: constants.BodyLokSabha, Search: "FINANCE"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "BL-FN-1234", rows[0].BillCode)

	rows, err = ListBills(ctx, db, Filter{Body: constants.BodyLokSabha, Search: "hm-20"})
	require.NoError(t, err)
	require.Len(t, rows, 1, "code search")

	rows, err = ListBills(ctx, db, Filter{Body: constants.BodyStateAssembly, StateCode: "KA"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].StateName)
	assert.Equal(t, "Karnataka", *rows[0].StateName)

	rows, err = ListBills(ctx, db, Filter{Body: constants.BodyStateAssembly, StateCode: "TN"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	require.NoError(t, InsertBill(ctx, db, newBill("BL-FN-1111", "Tax 50% Act", "FN", constants.BodyLokSabha, nil, "2024-01-01")))
	require.NoError(t, InsertBill(ctx, db, newBill("BL-FN-2222", "Tax 500 Act", "FN", constants.BodyLokSabha, nil, "2024-01-02")))

	rows, err := ListBills(ctx, db, Filter{Body: constants.BodyLokSabha, Search: "50%"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "BL-FN-1111", rows[0].BillCode)
}

func TestInsertBillDuplicateCode(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	require.NoError(t, InsertBill(ctx, db, newBill("BL-FN-1234", "A", "FN", constants.BodyLokSabha, nil, "2024-01-01")))
	err := InsertBill(ctx, db, newBill("BL-FN-1234", "B", "FN", constants.BodyLokSabha, nil, "2024-01-01"))
	assert.ErrorIs(t, err, helper.ErrDuplicateKey)
}

func TestInsertRequiresExistingReferences(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := InsertBill(ctx, db, newBill("BL-XX-1234", "A", "XX", constants.BodyLokSabha, nil, "2024-01-01"))
	assert.ErrorIs(t, err, helper.ErrValidation)

	q := &model.QuestionModel{
		QuestionCode: "MH-FN-1234", QuestionTitle: "Q", QuestionMinistryCode: "FN",
		QuestionLegislativeBody: constants.BodyStateAssembly, QuestionStateCode: strPtr("MH"),
		QuestionType: constants.QuestionTypeStarred, QuestionCurrentStatus: constants.QuestionStatusNotAnswered,
		QuestionIntroducedDate: "2024-01-01",
	}
	assert.ErrorIs(t, InsertQuestion(ctx, db, q), helper.ErrValidation)
}

func TestUpdateStatusAndDelete(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	b := newBill("BL-FN-1234", "Finance Reform Act", "FN", constants.BodyLokSabha, nil, "2024-01-01")
	require.NoError(t, InsertBill(ctx, db, b))

	yes := constants.ApprovalResultYes
	require.NoError(t, UpdateStatus(ctx, db, records.TableBills, b.BillID, constants.BillStatusPassed, &yes))

	row, err := FindBillByID(ctx, db, b.BillID)
	require.NoError(t, err)
	assert.Equal(t, constants.BillStatusPassed, row.BillCurrentStatus)
	assert.Equal(t, constants.ApprovalResultYes, row.BillApprovalResult)
	assert.Equal(t, "Finance Reform Act", row.BillName, "other fields untouched")

	assert.ErrorIs(t, UpdateStatus(ctx, db, records.TableBills, 999, constants.BillStatusPassed, nil), helper.ErrNotFound)
	assert.ErrorIs(t, UpdateStatus(ctx, db, records.TableBills, b.BillID, "Vetoed", nil), helper.ErrValidation)
	assert.ErrorIs(t, UpdateStatus(ctx, db, records.TableCurrentAffairs, b.BillID, "x", nil), helper.ErrValidation)

	require.NoError(t, DeleteBill(ctx, db, b.BillID))
	_, err = FindBillByID(ctx, db, b.BillID)
	assert.ErrorIs(t, err, helper.ErrNotFound)
	assert.ErrorIs(t, DeleteBill(ctx, db, b.BillID), helper.ErrNotFound)
}

func TestSuggestQuestionsLimitsRows(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		q := &model.QuestionModel{
			QuestionCode:            "QN-FN-" + string(rune('A'+i)) + "000",
			QuestionTitle:           "Finance question",
			QuestionMinistryCode:    "FN",
			QuestionLegislativeBody: constants.BodyLokSabha,
			QuestionType:            constants.QuestionTypeStarred,
			QuestionCurrentStatus:   constants.QuestionStatusAnswered,
			QuestionIntroducedDate:  "2024-01-01",
		}
		require.NoError(t, InsertQuestion(ctx, db, q))
	}

	rows, err := SuggestQuestions(ctx, db, constants.BodyLokSabha, "fin")
	require.NoError(t, err)
	assert.Len(t, rows, 10)
	assert.Equal(t, "Finance", rows[0].MinistryName)

	rows, err = SuggestQuestions(ctx, db, constants.BodyRajyaSabha, "fin")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSearchFoldsNonASCIICase(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	require.NoError(t, InsertBill(ctx, db, newBill("BL-ED-1111", "ÉCOLE Reform Act", "ED", constants.BodyLokSabha, nil, "2024-01-01")))
	require.NoError(t, InsertBill(ctx, db, newBill("BL-FN-2222", "Finance Reform Act", "FN", constants.BodyLokSabha, nil, "2024-02-01")))
	require.NoError(t, InsertQuestion(ctx, db, &model.QuestionModel{
		QuestionCode:            "QN-ED-3333",
		QuestionTitle:           "Ärzte in Schulen",
		QuestionMinistryCode:    "ED",
		QuestionLegislativeBody: constants.BodyLokSabha,
		QuestionType:            constants.QuestionTypeStarred,
		QuestionCurrentStatus:   constants.QuestionStatusAnswered,
		QuestionIntroducedDate:  "2024-01-01",
	}))

	bills, err := ListBills(ctx, db, Filter{Body: constants.BodyLokSabha, Search: "école"})
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "BL-ED-1111", bills[0].BillCode)

	suggestions, err := SuggestBills(ctx, db, constants.BodyLokSabha, "éco")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "ÉCOLE Reform Act", suggestions[0].Name)

	questions, err := ListQuestions(ctx, db, Filter{Body: constants.BodyLokSabha, Search: "ÄRZTE"})
	require.NoError(t, err)
	require.Len(t, questions, 1)

	qs, err := SuggestQuestions(ctx, db, constants.BodyLokSabha, "ärz")
	require.NoError(t, err)
	assert.Len(t, qs, 1)
}

func TestUpdateStatusStoresCanonicalValue(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	b := newBill("BL-FN-1234", "Finance Reform Act", "FN", constants.BodyLokSabha, nil, "2024-01-01")
	require.NoError(t, InsertBill(ctx, db, b))
	approval := "yes"
	require.NoError(t, UpdateBillStatus(ctx, db, b.BillID, "NotPassed", &approval))

	row, err := FindBillByID(ctx, db, b.BillID)
	require.NoError(t, err)
	assert.Equal(t, constants.BillStatusNotPassed, row.BillCurrentStatus)
	assert.Equal(t, constants.ApprovalResultYes, row.BillApprovalResult)

	q := &model.QuestionModel{
		QuestionCode:            "QN-FN-5555",
		QuestionTitle:           "Tax refunds",
		QuestionMinistryCode:    "FN",
		QuestionLegislativeBody: constants.BodyLokSabha,
		QuestionType:            constants.QuestionTypeStarred,
		QuestionCurrentStatus:   constants.QuestionStatusNotAnswered,
		QuestionIntroducedDate:  "2024-01-01",
	}
	require.NoError(t, InsertQuestion(ctx, db, q))
	require.NoError(t, UpdateQuestionStatus(ctx, db, q.QuestionID, "answered"))

	qrow, err := FindQuestionByID(ctx, db, q.QuestionID)
	require.NoError(t, err)
	assert.Equal(t, constants.QuestionStatusAnswered, qrow.QuestionCurrentStatus)
}
