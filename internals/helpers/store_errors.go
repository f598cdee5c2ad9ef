package helper

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Taksonomi error store/domain. Repository selalu membungkus dengan %w
// sehingga controller cukup memakai errors.Is.
var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("record not found")
	ErrValidation   = errors.New("validation failed")
	ErrInUse        = errors.New("record is still referenced")
	ErrStore        = errors.New("store error")
	ErrFileIO       = errors.New("file io error")
)

const pgUniqueViolation = "23505"

// FieldError: pelanggaran aturan domain pada satu field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }
func (e *FieldError) Unwrap() error { return ErrValidation }

func NewFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

func isClassified(err error) bool {
	for _, target := range []error{ErrDuplicateKey, ErrNotFound, ErrValidation, ErrInUse, ErrStore, ErrFileIO} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ClassifyDBError memetakan error driver (postgres/sqlite) ke taksonomi di atas.
// Error yang sudah terklasifikasi diteruskan apa adanya.
func ClassifyDBError(err error) error {
	switch {
	case err == nil:
		return nil
	case isClassified(err):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	default:
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// StatusForError: satu-satunya tempat mapping taksonomi → HTTP status.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrDuplicateKey), errors.Is(err, ErrInUse):
		return fiber.StatusConflict
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// JsonStoreError menulis response error standar untuk error repository/service.
func JsonStoreError(c *fiber.Ctx, err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return JsonValidationError(c, map[string][]string{fe.Field: {fe.Message}})
	}

	status := StatusForError(err)
	if status >= 500 {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
		msg := "internal store error"
		if errors.Is(err, ErrFileIO) {
			msg = "failed to store document"
		}
		return JsonError(c, status, msg)
	}

	msg := err.Error()
	switch {
	case errors.Is(err, ErrDuplicateKey):
		msg = "record already exists"
	case errors.Is(err, ErrInUse):
		msg = "record is still referenced by bills or questions"
	case errors.Is(err, ErrNotFound):
		msg = "record not found"
	}
	return JsonError(c, status, msg)
}
