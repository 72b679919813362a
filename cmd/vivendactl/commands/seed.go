package commands

import (
	"context"
	"fmt"

	"github.com/jcanovas/vivenda/internal/models"
	"github.com/jcanovas/vivenda/internal/repository"
	"github.com/spf13/cobra"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// seedListings is a small development data set covering different cities,
// typologies and price points so discovery filters have something to bite on.
func seedListings() []models.NewListing {
	return []models.NewListing{
		{
			Title:       "Piso en Vallecas",
			Kind:        models.KindApartment,
			Operation:   models.OperationSale,
			Price:       120000,
			City:        strPtr("Madrid"),
			Bedrooms:    intPtr(2),
			Bathrooms:   intPtr(1),
			AreaM2:      floatPtr(65),
			Description: strPtr("Un piso luminoso en el centro de Vallecas"),
		},
		{
			Title:       "Ático en Eixample",
			Kind:        models.KindPenthouse,
			Operation:   models.OperationSale,
			Price:       420000,
			City:        strPtr("Barcelona"),
			Bedrooms:    intPtr(3),
			Bathrooms:   intPtr(2),
			AreaM2:      floatPtr(110),
			Description: strPtr("Ático con terraza en pleno Eixample"),
		},
		{
			Title:       "Estudio céntrico",
			Kind:        models.KindStudio,
			Operation:   models.OperationSale,
			Price:       85000,
			City:        strPtr("Valencia"),
			Bedrooms:    intPtr(0),
			Bathrooms:   intPtr(1),
			AreaM2:      floatPtr(35),
			Description: strPtr("Estudio reformado ideal para inversión"),
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert development seed listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			db, err := connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := repository.NewListingRepository(db)
			for _, listing := range seedListings() {
				id, err := repo.Create(ctx, listing)
				if err != nil {
					return fmt.Errorf("failed to seed %q: %w", listing.Title, err)
				}
				log.Info("Seeded listing", map[string]interface{}{
					"id":    id.String(),
					"title": listing.Title,
				})
			}

			fmt.Printf("Seeded %d listings.\n", len(seedListings()))
			return nil
		},
	}
}
