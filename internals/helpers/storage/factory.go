package storage

import (
	"fmt"

	"legisq_backend/internals/configs"
)

// NewFromConfig memilih backend sesuai STORAGE_DRIVER (local|oss).
func NewFromConfig() (Storage, error) {
	switch configs.StorageDriver {
	case "", "local":
		return NewLocalStorage(configs.StorageRoot, configs.PDFDir), nil
	case "oss":
		return NewOSSStorageFromEnv(configs.PDFDir)
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", configs.StorageDriver)
	}
}
