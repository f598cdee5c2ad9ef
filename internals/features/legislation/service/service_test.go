package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"legisq_backend/internals/constants"
	database "legisq_backend/internals/databases"
	"legisq_backend/internals/features/legislation/dto"
	helper "legisq_backend/internals/helpers"
	"legisq_backend/internals/helpers/storage"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

// fixedCodes mengembalikan kode berurutan; elemen terakhir diulang.
type fixedCodes struct {
	codes []string
	calls int
}

func (f *fixedCodes) next() (string, error) {
	i := f.calls
	if i >= len(f.codes) {
		i = len(f.codes) - 1
	}
	f.calls++
	return f.codes[i], nil
}

func (f *fixedCodes) BillCode(string, string, *string) (string, error)     { return f.next() }
func (f *fixedCodes) QuestionCode(string, string, *string) (string, error) { return f.next() }

func setup(t *testing.T) (*gorm.DB, *storage.LocalStorage, string) {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, db.Exec(`INSERT INTO ministries (code, name) VALUES ('FN', 'Finance'), ('ED', 'Education')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO states (code, name) VALUES ('KA', 'Karnataka')`).Error)
	root := t.TempDir()
	return db, storage.NewLocalStorage(root, "pdfs"), root
}

func pdfFiles(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(root, "pdfs"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func strPtr(s string) *string { return &s }

func TestCreateBillEndToEnd(t *testing.T) {
	db, files, _ := setup(t)
	ctx := context.Background()
	svc := NewBillService(db, files)
	svc.Now = func() time.Time { return time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC) }

	row, err := svc.Create(ctx, &dto.CreateBillRequest{
		BillName:        "Finance Reform Act",
		MinistryCode:    "fn",
		LegislativeBody: "lok_sabha",
		VotesFavour:     10,
		VotesAgainst:    3,
		CurrentStatus:   "Passed",
		IsMoneyBill:     true,
	}, nil)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^BL-FN-\d{4}$`), row.BillCode)
	assert.Equal(t, constants.BodyLokSabha, row.BillLegislativeBody)
	assert.Equal(t, constants.ApprovalPresident, row.BillApprovalStatus)
	assert.Equal(t, constants.ApprovalResultPending, row.BillApprovalResult)
	assert.Equal(t, "2024-07-01", row.BillIntroducedDate, "defaults to today")
	assert.True(t, row.BillIsMoneyBill)
	assert.Equal(t, "Finance", row.MinistryName)

	rows, err := svc.List(ctx, dto.ListQuery{Body: "Lok Sabha", Q: "finance"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, row.BillCode, rows[0].BillCode)
	assert.Equal(t, 10, rows[0].BillVotesFavour)
	assert.Equal(t, 3, rows[0].BillVotesAgainst)
}

func TestCreateBillDomainRules(t *testing.T) {
	db, files, _ := setup(t)
	ctx := context.Background()
	svc := NewBillService(db, files)

	rs, err := svc.Create(ctx, &dto.CreateBillRequest{
		BillName: "Upper House Money Act", MinistryCode: "FN", LegislativeBody: "Rajya Sabha", IsMoneyBill: true,
	}, nil)
	require.NoError(t, err)
	assert.False(t, rs.BillIsMoneyBill, "rajya sabha cannot carry money bills")

	sa, err := svc.Create(ctx, &dto.CreateBillRequest{
		BillName: "Karnataka Budget Act", MinistryCode: "FN", LegislativeBody: "State Assembly", StateCode: strPtr("ka"),
	}, nil)
	require.NoError(t, err)
	assert.Regexp(t, `^KA-FN-\d{4}$`, sa.BillCode)
	assert.Equal(t, constants.ApprovalGovernor, sa.BillApprovalStatus)
	require.NotNil(t, sa.StateName)
	assert.Equal(t, "Karnataka", *sa.StateName)

	ls, err := svc.Create(ctx, &dto.CreateBillRequest{
		BillName: "Stray State Act", MinistryCode: "FN", LegislativeBody: "Lok Sabha", StateCode: strPtr("KA"),
	}, nil)
	require.NoError(t, err)
	assert.Nil(t, ls.BillStateCode, "state dropped outside State Assembly")

	_, err = svc.Create(ctx, &dto.CreateBillRequest{
		BillName: "No State Act", MinistryCode: "FN", LegislativeBody: "State Assembly",
	}, nil)
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = svc.Create(ctx, &dto.CreateBillRequest{
		BillName: "Unknown Ministry Act", MinistryCode: "ZZ", LegislativeBody: "Lok Sabha",
	}, nil)
	assert.ErrorIs(t, err, helper.ErrValidation)

	_, err = svc.Create(ctx, &dto.CreateBillRequest{
		BillName: "Bad Date Act", MinistryCode: "FN", LegislativeBody: "Lok Sabha", IntroducedDate: "01/02/2024",
	}, nil)
	assert.ErrorIs(t, err, helper.ErrValidation)
}

func TestCreateRetriesOnCodeCollision(t *testing.T) {
	db, files, root := setup(t)
	ctx := context.Background()
	svc := NewBillService(db, files)

	svc.Codes = &fixedCodes{codes: []string{"BL-FN-1111"}}
	_, err := svc.Create(ctx, &dto.CreateBillRequest{BillName: "First Act", MinistryCode: "FN", LegislativeBody: "Lok Sabha"}, nil)
	require.NoError(t, err)

	codes := &fixedCodes{codes: []string{"BL-FN-1111", "BL-FN-1111", "BL-FN-2222"}}
	svc.Codes = codes
	row, err := svc.Create(ctx, &dto.CreateBillRequest{BillName: "Second Act", MinistryCode: "FN", LegislativeBody: "Lok Sabha"},
		&storage.Upload{Filename: "second.pdf", Data: samplePDF})
	require.NoError(t, err)
	assert.Equal(t, "BL-FN-2222", row.BillCode)
	assert.Equal(t, 3, codes.calls)
	require.NotNil(t, row.BillPDFPath)
	assert.Equal(t, "pdfs/BL-FN-2222_bill.pdf", *row.BillPDFPath)
	assert.Equal(t, []string{"BL-FN-2222_bill.pdf"}, pdfFiles(t, root), "colliding attempts leave no files behind")
}

func TestCreateGivesUpAfterMaxAttempts(t *testing.T) {
	db, files, root := setup(t)
	ctx := context.Background()
	svc := NewQuestionService(db, files)

	svc.Codes = &fixedCodes{codes: []string{"QN-FN-1111"}}
	_, err := svc.Create(ctx, &dto.CreateQuestionRequest{
		QuestionTitle: "Inflation data", MinistryCode: "FN", LegislativeBody: "Lok Sabha", QuestionType: "Starred",
	}, nil)
	require.NoError(t, err)

	codes := &fixedCodes{codes: []string{"QN-FN-1111"}}
	svc.Codes = codes
	_, err = svc.Create(ctx, &dto.CreateQuestionRequest{
		QuestionTitle: "GDP data", MinistryCode: "FN", LegislativeBody: "Lok Sabha", QuestionType: "unstarred",
	}, &storage.Upload{Filename: "q.pdf", Data: samplePDF})
	assert.ErrorIs(t, err, helper.ErrDuplicateKey)
	assert.Equal(t, 5, codes.calls)
	assert.Empty(t, pdfFiles(t, root), "failed insert removes written file")
}

func TestQuestionLifecycle(t *testing.T) {
	db, files, root := setup(t)
	ctx := context.Background()
	svc := NewQuestionService(db, files)

	row, err := svc.Create(ctx, &dto.CreateQuestionRequest{
		QuestionTitle: "Mid-day meal coverage", MinistryCode: "ED", LegislativeBody: "Lok Sabha",
		QuestionType: "Starred", IntroducedDate: "2024-02-10",
	}, &storage.Upload{Filename: "q.pdf", Data: samplePDF})
	require.NoError(t, err)
	assert.Regexp(t, `^QN-ED-\d{4}$`, row.QuestionCode)
	assert.Equal(t, constants.QuestionStatusNotAnswered, row.QuestionCurrentStatus)

	rc, name, err := svc.OpenDocument(ctx, row.QuestionID)
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, samplePDF, data)
	assert.Equal(t, row.QuestionCode+"_qn.pdf", name)

	updated, err := svc.UpdateStatus(ctx, row.QuestionID, &dto.UpdateQuestionStatusRequest{CurrentStatus: "answered"})
	require.NoError(t, err)
	assert.Equal(t, constants.QuestionStatusAnswered, updated.QuestionCurrentStatus)
	assert.Equal(t, row.QuestionCode, updated.QuestionCode, "code is immutable")

	require.NoError(t, svc.Delete(ctx, row.QuestionID))
	assert.Empty(t, pdfFiles(t, root))
	_, err = svc.Get(ctx, row.QuestionID)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestSuggest(t *testing.T) {
	db, files, _ := setup(t)
	ctx := context.Background()
	svc := NewBillService(db, files)
	svc.Codes = &fixedCodes{codes: []string{"BL-FN-1234", "BL-FN-5678"}}

	for _, name := range []string{"Finance Reform Act", "Tax Act"} {
		_, err := svc.Create(ctx, &dto.CreateBillRequest{BillName: name, MinistryCode: "FN", LegislativeBody: "Lok Sabha"}, nil)
		require.NoError(t, err)
	}

	got, err := svc.Suggest(ctx, dto.SuggestQuery{Body: "Lok Sabha", Q: "f"})
	require.NoError(t, err)
	assert.Empty(t, got, "one character is too short")

	got, err = svc.Suggest(ctx, dto.SuggestQuery{Body: "Lok Sabha", Q: "fin"})
	require.NoError(t, err)
	assert.Equal(t, []string{"BL-FN-1234", "BL-FN-5678", "Finance", "Finance Reform Act", "Tax Act"}, got)
}

func TestOpenDocumentWithoutPDF(t *testing.T) {
	db, files, _ := setup(t)
	ctx := context.Background()
	svc := NewBillService(db, files)

	row, err := svc.Create(ctx, &dto.CreateBillRequest{BillName: "Paperless Act", MinistryCode: "FN", LegislativeBody: "Lok Sabha"}, nil)
	require.NoError(t, err)

	_, _, err = svc.OpenDocument(ctx, row.BillID)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}
