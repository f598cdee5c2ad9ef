// Package codegen builds the human-readable record codes:
// BL-{ministry}-{dddd} and QN-{ministry}-{dddd} for parliament records,
// {state}-{ministry}-{dddd} for State Assembly records.
package codegen

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"legisq_backend/internals/constants"
	helper "legisq_backend/internals/helpers"
)

const (
	MinSuffix = 1000
	MaxSuffix = 9999

	// MaxAttempts: batas retry service saat kode bentrok (DuplicateKey).
	MaxAttempts = 5
)

var (
	reCode     = regexp.MustCompile(`^([A-Z]{2})-([A-Z]{2})-(\d{4})$`)
	reTwoAlpha = regexp.MustCompile(`^[A-Z]{2}$`)
)

// Generator aman dipakai paralel; sumber acak bisa diinjeksi untuk test.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator() *Generator {
	now := uint64(time.Now().UnixNano())
	return NewGeneratorWithRand(rand.New(rand.NewPCG(now, now>>1|1)))
}

func NewGeneratorWithRand(r *rand.Rand) *Generator {
	return &Generator{rnd: r}
}

func (g *Generator) suffix() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return MinSuffix + g.rnd.IntN(MaxSuffix-MinSuffix+1)
}

func (g *Generator) BillCode(body, ministryCode string, stateCode *string) (string, error) {
	return g.generate(constants.CodePrefixBill, body, ministryCode, stateCode)
}

func (g *Generator) QuestionCode(body, ministryCode string, stateCode *string) (string, error) {
	return g.generate(constants.CodePrefixQuestion, body, ministryCode, stateCode)
}

func (g *Generator) generate(prefix, body, ministryCode string, stateCode *string) (string, error) {
	ministry := strings.ToUpper(strings.TrimSpace(ministryCode))
	if !reTwoAlpha.MatchString(ministry) {
		return "", helper.NewFieldError("ministry_code", "must be exactly two letters")
	}

	switch body {
	case constants.BodyStateAssembly:
		if stateCode == nil {
			return "", helper.NewFieldError("state_code", "is required for State Assembly records")
		}
		state := strings.ToUpper(strings.TrimSpace(*stateCode))
		if !reTwoAlpha.MatchString(state) {
			return "", helper.NewFieldError("state_code", "must be exactly two letters")
		}
		prefix = state
	case constants.BodyLokSabha, constants.BodyRajyaSabha:
	default:
		return "", helper.NewFieldError("legislative_body", fmt.Sprintf("unknown legislative body %q", body))
	}

	return fmt.Sprintf("%s-%s-%04d", prefix, ministry, g.suffix()), nil
}

// Valid: format kode XX-YY-dddd dengan suffix dalam rentang.
func Valid(code string) bool {
	m := reCode.FindStringSubmatch(code)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[3])
	return err == nil && n >= MinSuffix && n <= MaxSuffix
}
