package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/drilathedev/virtual-view-estate/internal/models"
	"github.com/drilathedev/virtual-view-estate/internal/repositories"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

// SentinelPropertyID marks a store that has already been seeded.
const SentinelPropertyID = "dddddddd-dddd-4ddd-dddd-ddddddddddd1"

var demoFeatures = []string{
	"Parkim privat",
	"Ballkon",
	"Ngrohje qendrore",
	"Ashensor",
	"Pishinë private",
	"Oborr",
}

// SeedDemoData loads the demo catalog used by staging environments. Idempotent:
// if the sentinel property exists the whole pass is skipped.
func SeedDemoData(
	ctx context.Context,
	propertyRepo repositories.PropertyRepository,
	featureRepo repositories.FeatureRepository,
) error {
	sentinelID := uuid.MustParse(SentinelPropertyID)

	if existing, err := propertyRepo.GetByID(ctx, sentinelID); err != nil {
		return fmt.Errorf("check for sentinel property: %w", err)
	} else if existing != nil {
		utils.Logger.Info("Seed data already present; skipping seeding.")
		return nil
	}

	for _, name := range demoFeatures {
		f := &models.PropertyFeature{ID: uuid.New(), Name: name}
		if err := featureRepo.Create(ctx, f); err != nil {
			// Feature names are unique; a rerun racing another instance is fine.
			utils.Logger.WithError(err).Debugf("seed feature %q skipped", name)
		}
	}

	for i, p := range demoProperties() {
		if i == 0 {
			p.ID = sentinelID
		}
		if err := propertyRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed property %q: %w", p.Title, err)
		}
	}

	utils.Logger.Info("Seeding completed successfully.")
	return nil
}

// demoProperties mirrors the launch catalog: six Kosovo listings covering all
// three media types and both sale and rental pricing formats.
func demoProperties() []*models.Property {
	return []*models.Property{
		{
			ID:        uuid.New(),
			Title:     "Apartament Modern në Prishtinë",
			Location:  "Prishtinë, Kosovë",
			Price:     "€120,000",
			Beds:      2,
			Baths:     2,
			Area:      85,
			MediaType: models.MediaType3D,
			ForRent:   false,
			Image:     "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=1200",
			Features:  []string{"Parkim privat", "Ballkon", "Ngrohje qendrore"},
		},
		{
			ID:        uuid.New(),
			Title:     "Penthouse me Pamje Panoramike",
			Location:  "Prishtinë, Kosovë",
			Price:     "€2,500/muaj",
			Beds:      3,
			Baths:     3,
			Area:      150,
			MediaType: models.MediaTypeVideo,
			ForRent:   true,
			Image:     "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1200",
			Features:  []string{"Ashensor", "Ballkon"},
		},
		{
			ID:        uuid.New(),
			Title:     "Shtëpi me Oborr të Gjelbër",
			Location:  "Prishtinë, Kosovë",
			Price:     "€280,000",
			Beds:      4,
			Baths:     3,
			Area:      220,
			MediaType: models.MediaTypePhoto,
			ForRent:   false,
			Image:     "https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=1200",
			Features:  []string{"Oborr", "Parkim privat"},
		},
		{
			ID:        uuid.New(),
			Title:     "Apartament i Ri në Qendër",
			Location:  "Pejë, Kosovë",
			Price:     "€95,000",
			Beds:      2,
			Baths:     1,
			Area:      70,
			MediaType: models.MediaType3D,
			ForRent:   false,
			Image:     "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=1200",
			Features:  []string{"Ngrohje qendrore"},
		},
		{
			ID:        uuid.New(),
			Title:     "Studio Modern me Vizualizim 3D",
			Location:  "Prizren, Kosovë",
			Price:     "€800/muaj",
			Beds:      1,
			Baths:     1,
			Area:      45,
			MediaType: models.MediaType3D,
			ForRent:   true,
			Image:     "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=1200",
		},
		{
			ID:        uuid.New(),
			Title:     "Vilë Luksoze me Pishinë",
			Location:  "Prishtinë, Kosovë",
			Price:     "€450,000",
			Beds:      5,
			Baths:     4,
			Area:      320,
			MediaType: models.MediaTypeVideo,
			ForRent:   false,
			Image:     "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=1200",
			Features:  []string{"Pishinë private", "Oborr", "Parkim privat"},
		},
	}
}
