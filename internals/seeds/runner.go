package seeds

import (
	"context"
	"log"

	"gorm.io/gorm"

	"legisq_backend/internals/seeds/metadata"
)

const (
	MinistriesFile = "internals/seeds/metadata/data_ministries.json"
	StatesFile     = "internals/seeds/metadata/data_states.json"
)

func RunAllSeeds(db *gorm.DB) {
	ctx := context.Background()

	//* Metadata
	if n, err := metadata.SeedMinistriesFromJSON(ctx, db, MinistriesFile); err != nil {
		log.Printf("❌ Seeding ministries failed: %v", err)
	} else {
		log.Printf("✅ Seeded %d ministries", n)
	}
	if n, err := metadata.SeedStatesFromJSON(ctx, db, StatesFile); err != nil {
		log.Printf("❌ Seeding states failed: %v", err)
	} else {
		log.Printf("✅ Seeded %d states", n)
	}
}
