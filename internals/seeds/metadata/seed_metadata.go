package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"legisq_backend/internals/features/metadata/repository"
)

type CodeNameSeed struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func readSeedFile(filePath string) ([]CodeNameSeed, error) {
	log.Println("📥 Reading seed file:", filePath)
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	var data []CodeNameSeed
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	return data, nil
}

// SeedMinistriesFromJSON menambahkan ministry yang kodenya belum ada.
// Mengembalikan jumlah row yang benar-benar di-insert.
func SeedMinistriesFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	data, err := readSeedFile(filePath)
	if err != nil {
		return 0, err
	}
	inserted := 0
	for _, item := range data {
		exists, err := repository.MinistryExists(ctx, db, item.Code)
		if err != nil {
			return inserted, err
		}
		if exists {
			log.Printf("ℹ️ Ministry %s already exists, skipping", item.Code)
			continue
		}
		if _, err := repository.InsertMinistry(ctx, db, item.Code, item.Name); err != nil {
			log.Printf("❌ Failed to insert ministry %s: %v", item.Code, err)
			continue
		}
		inserted++
		log.Printf("✅ Inserted ministry %s", item.Code)
	}
	return inserted, nil
}

func SeedStatesFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	data, err := readSeedFile(filePath)
	if err != nil {
		return 0, err
	}
	inserted := 0
	for _, item := range data {
		exists, err := repository.StateExists(ctx, db, item.Code)
		if err != nil {
			return inserted, err
		}
		if exists {
			log.Printf("ℹ️ State %s already exists, skipping", item.Code)
			continue
		}
		if _, err := repository.InsertState(ctx, db, item.Code, item.Name); err != nil {
			log.Printf("❌ Failed to insert state %s: %v", item.Code, err)
			continue
		}
		inserted++
		log.Printf("✅ Inserted state %s", item.Code)
	}
	return inserted, nil
}
