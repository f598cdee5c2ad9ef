// Package service menghasilkan ringkasan singkat dari dokumen PDF bill/question.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"legisq_backend/internals/helpers/storage"
	"legisq_backend/internals/middlewares/metrics"
)

const (
	MinTextLength   = 100
	MaxSummaryWords = 100
	DefaultTimeout  = 30 * time.Second
)

var (
	ErrNoDocument   = errors.New("no document available for summarization")
	ErrTextTooShort = errors.New("document text is too short to summarize")
	ErrProvider     = errors.New("summary provider failed")
)

// Provider: model bahasa yang meringkas teks mentah.
type Provider interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Cache ringkasan per isi dokumen. Miss dikembalikan sebagai ("", false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// TextExtractor mengambil teks polos dari isi file PDF.
type TextExtractor func(data []byte) (string, error)

type Summary struct {
	Text   string `json:"summary"`
	Words  int    `json:"words"`
	Cached bool   `json:"cached"`
}

type Summarizer struct {
	Files    storage.Storage
	Provider Provider
	Extract  TextExtractor
	Cache    Cache
	Timeout  time.Duration
	TTL      time.Duration
}

func NewSummarizer(files storage.Storage, provider Provider) *Summarizer {
	return &Summarizer{
		Files:    files,
		Provider: provider,
		Extract:  ExtractPDFText,
		Timeout:  DefaultTimeout,
		TTL:      24 * time.Hour,
	}
}

// cacheKey dari sha256 isi PDF; path bisa dipakai ulang setelah row dihapus.
func cacheKey(data []byte) string {
	sum := sha256.Sum256(data)
	return "legisq:summary:" + hex.EncodeToString(sum[:])
}

// Summarize: path kosong/file hilang → ErrNoDocument, teks < 100 karakter →
// ErrTextTooShort, kegagalan/timeout provider → ErrProvider.
func (s *Summarizer) Summarize(ctx context.Context, pdfPath string) (Summary, error) {
	pdfPath = strings.TrimSpace(pdfPath)
	if pdfPath == "" || s.Files == nil {
		metrics.Summaries.WithLabelValues("no_document").Inc()
		return Summary{}, ErrNoDocument
	}

	data, err := s.readDocument(ctx, pdfPath)
	if err != nil {
		metrics.Summaries.WithLabelValues("no_document").Inc()
		log.Printf("[WARN] summary: cannot read %s: %v", pdfPath, err)
		return Summary{}, fmt.Errorf("%w: %w", ErrNoDocument, err)
	}

	key := cacheKey(data)
	if s.Cache != nil {
		text, ok, err := s.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("[WARN] summary cache get %s: %v", pdfPath, err)
		} else if ok {
			metrics.Summaries.WithLabelValues("cached").Inc()
			return Summary{Text: text, Words: len(strings.Fields(text)), Cached: true}, nil
		}
	}

	extract := s.Extract
	if extract == nil {
		extract = ExtractPDFText
	}
	text, err := extract(data)
	if err != nil {
		metrics.Summaries.WithLabelValues("no_document").Inc()
		return Summary{}, fmt.Errorf("%w: %w", ErrNoDocument, err)
	}
	text = strings.TrimSpace(text)
	if len([]rune(text)) < MinTextLength {
		metrics.Summaries.WithLabelValues("too_short").Inc()
		return Summary{}, ErrTextTooShort
	}

	out, err := s.callProvider(ctx, text)
	if err != nil {
		metrics.Summaries.WithLabelValues("provider_error").Inc()
		log.Printf("[ERROR] summary provider %s: %v", pdfPath, err)
		return Summary{}, err
	}
	out = LimitWords(out, MaxSummaryWords)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, out, s.TTL); err != nil {
			log.Printf("[WARN] summary cache set %s: %v", pdfPath, err)
		}
	}
	metrics.Summaries.WithLabelValues("ok").Inc()
	return Summary{Text: out, Words: len(strings.Fields(out))}, nil
}

func (s *Summarizer) readDocument(ctx context.Context, pdfPath string) ([]byte, error) {
	rc, err := s.Files.Open(ctx, pdfPath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

type providerResult struct {
	text string
	err  error
}

// callProvider menjalankan provider dengan batas waktu; provider yang
// tidak menghormati ctx tetap diputus lewat select.
func (s *Summarizer) callProvider(ctx context.Context, text string) (string, error) {
	if s.Provider == nil {
		return "", fmt.Errorf("%w: no provider configured", ErrProvider)
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan providerResult, 1)
	go func() {
		out, err := s.Provider.Summarize(ctx, text)
		done <- providerResult{text: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrProvider, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("%w: %w", ErrProvider, r.err)
		}
		if strings.TrimSpace(r.text) == "" {
			return "", fmt.Errorf("%w: empty response", ErrProvider)
		}
		return r.text, nil
	}
}

// LimitWords memotong teks ke maksimal n kata (spasi dinormalisasi).
func LimitWords(text string, n int) string {
	words := strings.Fields(text)
	if n > 0 && len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
