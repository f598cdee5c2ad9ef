package constants

import "strings"

// Legislative bodies (stored values)
const (
	BodyLokSabha      = "Lok Sabha"
	BodyRajyaSabha    = "Rajya Sabha"
	BodyStateAssembly = "State Assembly"
)

// Bill lifecycle
const (
	BillStatusPending   = "Pending"
	BillStatusPassed    = "Passed"
	BillStatusNotPassed = "Not Passed"

	ApprovalPresident = "President Approval"
	ApprovalGovernor  = "Governor Approval"

	ApprovalResultPending = "Pending"
	ApprovalResultYes     = "Yes"
	ApprovalResultNo      = "No"
)

// Parliamentary questions
const (
	QuestionTypeStarred   = "Starred"
	QuestionTypeUnstarred = "Unstarred"

	QuestionStatusAnswered    = "Answered"
	QuestionStatusNotAnswered = "Not Answered"
)

// Prefix kode record
const (
	CodePrefixBill     = "BL"
	CodePrefixQuestion = "QN"
)

// DateLayout dipakai untuk semua tanggal (introduced/published).
const DateLayout = "2006-01-02"

var (
	LegislativeBodies = []string{BodyLokSabha, BodyRajyaSabha, BodyStateAssembly}
	BillStatuses      = []string{BillStatusPending, BillStatusPassed, BillStatusNotPassed}
	ApprovalResults   = []string{ApprovalResultPending, ApprovalResultYes, ApprovalResultNo}
	QuestionTypes     = []string{QuestionTypeStarred, QuestionTypeUnstarred}
	QuestionStatuses  = []string{QuestionStatusAnswered, QuestionStatusNotAnswered}
)

var keyStripper = strings.NewReplacer(" ", "", "-", "", "_", "")

func enumKey(s string) string {
	return keyStripper.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// parseEnum mencocokkan input bebas ("lok_sabha", "LokSabha", "Lok Sabha") ke nilai tersimpan.
func parseEnum(s string, allowed []string) (string, bool) {
	k := enumKey(s)
	if k == "" {
		return "", false
	}
	for _, v := range allowed {
		if enumKey(v) == k {
			return v, true
		}
	}
	return "", false
}

func ParseLegislativeBody(s string) (string, bool) { return parseEnum(s, LegislativeBodies) }
func ParseBillStatus(s string) (string, bool)      { return parseEnum(s, BillStatuses) }
func ParseApprovalResult(s string) (string, bool)  { return parseEnum(s, ApprovalResults) }
func ParseQuestionType(s string) (string, bool)    { return parseEnum(s, QuestionTypes) }
func ParseQuestionStatus(s string) (string, bool)  { return parseEnum(s, QuestionStatuses) }

// ApprovalStatusFor: State Assembly → Governor, selain itu → President.
func ApprovalStatusFor(body string) string {
	if body == BodyStateAssembly {
		return ApprovalGovernor
	}
	return ApprovalPresident
}
