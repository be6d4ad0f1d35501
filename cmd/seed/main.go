package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/stemsi/heritage-admin/internal/config"
	"github.com/stemsi/heritage-admin/internal/database"
	"github.com/stemsi/heritage-admin/internal/factory"
	"github.com/stemsi/heritage-admin/internal/logger"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/repository"
)

var subDistrictNames = []string{
	"Kapuas Hilir", "Kapuas Hulu", "Selat", "Bataguh", "Basarang",
	"Kapuas Murung", "Mantangai", "Timpah", "Kapuas Tengah", "Pulau Petak",
}

func main() {
	heritages := flag.Int("heritages", 40, "Number of cultural heritage records to create")
	studios := flag.Int("studios", 15, "Number of art studios to create")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	subDistrictRepo := repository.NewSubDistrictRepository(pool)
	f := factory.New(factory.Stores{
		Users:             repository.NewUserRepository(pool),
		SubDistricts:      subDistrictRepo,
		CulturalHeritages: repository.NewCulturalHeritageRepository(pool),
		ArtStudios:        repository.NewArtStudioRepository(pool),
	})

	fmt.Println("=== Seeding demo data ===")

	creator, err := f.User(ctx, func(u *model.User) {
		u.Name = "Demo Admin"
		u.Email = fmt.Sprintf("demo-%d@example.test", time.Now().Unix())
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create demo user")
	}
	fmt.Printf("User %s / %s\n", creator.Email, factory.DefaultPassword)

	existing, err := subDistrictRepo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list sub-districts")
	}
	known := make(map[string]bool, len(existing))
	for _, sd := range existing {
		known[sd.Name] = true
	}

	subDistricts := existing
	for _, name := range subDistrictNames {
		if known[name] {
			continue
		}
		sd, err := f.SubDistrict(ctx, func(sd *model.SubDistrict) { sd.Name = name })
		if err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("Failed to create sub-district")
		}
		subDistricts = append(subDistricts, *sd)
	}
	fmt.Printf("Sub-districts: %d\n", len(subDistricts))

	for i := range *heritages {
		sd := subDistricts[i%len(subDistricts)]
		if _, err := f.CulturalHeritage(ctx, func(h *model.CulturalHeritage) {
			h.SubDistrictID = sd.ID
			h.CreatorID = creator.ID
		}); err != nil {
			log.Fatal().Err(err).Msg("Failed to create cultural heritage")
		}
	}
	fmt.Printf("Cultural heritages: %d\n", *heritages)

	for i := range *studios {
		sd := subDistricts[i%len(subDistricts)]
		if _, err := f.ArtStudio(ctx, func(a *model.ArtStudio) {
			a.SubDistrict = sd.Name
			a.CreatorID = creator.ID
		}); err != nil {
			log.Fatal().Err(err).Msg("Failed to create art studio")
		}
	}
	fmt.Printf("Art studios: %d\n", *studios)

	fmt.Println("Done.")
}
