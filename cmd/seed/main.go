package main

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"pet-care-records/internal/config"
	"pet-care-records/internal/domain/petcare"
	"pet-care-records/internal/persistence"
	"pet-care-records/internal/platform/logger"
)

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "Load fake pets and their records into the configured storage",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "pets",
				Aliases: []string{"n"},
				Usage:   "Number of pets to create",
				Value:   20,
			},
			&cli.IntFlag{
				Name:  "per-pet",
				Usage: "Max products, health records and appointments per pet",
				Value: 3,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Random seed (0 = time based)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Pets written concurrently",
				Value: 4,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Action: seedCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

// batch es una mascota con todo lo que cuelga de ella.
type batch struct {
	pet          petcare.Pet
	products     []petcare.Product
	healthRecs   []petcare.HealthRecord
	appointments []petcare.Appointment
}

type counters struct {
	pets, products, healthRecs, appointments atomic.Int64
}

func seedCommand(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(c.String("log-level")),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    "pet-care-seed",
	})

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)

	// Se genera todo antes de escribir: el faker global no se comparte entre goroutines.
	batches := make([]batch, c.Int("pets"))
	for i := range batches {
		batches[i] = fakeBatch(c.Int("per-pet"))
	}

	ctx, cancel := context.WithTimeout(c.Context, 2*time.Minute)
	defer cancel()

	store, err := persistence.Open(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close()

	log.Info("seed starting", map[string]any{
		"backend": store.Backend(),
		"pets":    len(batches),
		"seed":    seed,
	})

	var n counters
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, c.Int("workers")))
	for _, b := range batches {
		g.Go(func() error {
			return writeBatch(gctx, store, b, &n)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("seeding: %w", err)
	}

	log.Info("seed complete", map[string]any{
		"pets":           n.pets.Load(),
		"products":       n.products.Load(),
		"health_records": n.healthRecs.Load(),
		"appointments":   n.appointments.Load(),
	})
	return nil
}

// La mascota va primero: el resto exige que exista.
func writeBatch(ctx context.Context, store *persistence.Facade, b batch, n *counters) error {
	if _, err := store.SavePet(ctx, b.pet); err != nil {
		return fmt.Errorf("pet %s: %w", b.pet.ID, err)
	}
	n.pets.Add(1)

	for _, p := range b.products {
		if _, err := store.SaveProduct(ctx, p); err != nil {
			return fmt.Errorf("product %s: %w", p.ID, err)
		}
		n.products.Add(1)
	}
	for _, h := range b.healthRecs {
		if _, err := store.SaveHealthRecord(ctx, h); err != nil {
			return fmt.Errorf("health record %s: %w", h.ID, err)
		}
		n.healthRecs.Add(1)
	}
	for _, a := range b.appointments {
		if _, err := store.SaveAppointment(ctx, a); err != nil {
			return fmt.Errorf("appointment %s: %w", a.ID, err)
		}
		n.appointments.Add(1)
	}
	return nil
}

var species = []string{"Dog", "Cat", "Bird", "Rabbit", "Hamster"}

var appointmentTypes = []string{"Consulta", "Banho e Tosa", "Vacinação", "Retorno"}

func fakeBatch(perPet int) batch {
	now := time.Now().UTC()

	pet := petcare.Pet{
		ID:      petcare.NewID(petcare.KindPet),
		Name:    gofakeit.PetName(),
		Species: gofakeit.RandomString(species),
		Notes:   gofakeit.Word(),
	}
	if pet.Species == "Dog" {
		pet.Breed = gofakeit.Dog()
	}
	dob := gofakeit.DateRange(now.AddDate(-15, 0, 0), now.AddDate(0, -2, 0))
	pet.DOB = &dob

	b := batch{pet: pet}

	for range gofakeit.Number(0, perPet) {
		applied := gofakeit.DateRange(dob, now)
		expires := applied.AddDate(1, 0, 0)
		types := petcare.ProductTypes()
		b.products = append(b.products, petcare.Product{
			ID:              petcare.NewID(petcare.KindProduct),
			Name:            gofakeit.ProductName(),
			Type:            types[gofakeit.Number(0, len(types)-1)],
			ApplicationDate: &applied,
			ExpiryDate:      &expires,
			PetID:           pet.ID,
		})
	}

	for range gofakeit.Number(0, perPet) {
		date := gofakeit.DateRange(dob, now)
		expires := date.AddDate(1, 0, 0)
		b.healthRecs = append(b.healthRecs, petcare.HealthRecord{
			ID:         petcare.NewID(petcare.KindHealth),
			Type:       gofakeit.RandomString([]string{petcare.HealthVaccine, petcare.HealthDeworming, petcare.HealthMedication}),
			Date:       date,
			Dose:       fmt.Sprintf("%d ml", gofakeit.Number(1, 5)),
			ExpiryDate: &expires,
			PetID:      pet.ID,
		})
	}

	for range gofakeit.Number(0, perPet) {
		b.appointments = append(b.appointments, petcare.Appointment{
			ID:    petcare.NewID(petcare.KindAppointment),
			Type:  gofakeit.RandomString(appointmentTypes),
			Date:  gofakeit.DateRange(now.AddDate(0, -1, 0), now.AddDate(0, 3, 0)),
			Time:  fmt.Sprintf("%02d:%02d", gofakeit.Number(8, 18), 15*gofakeit.Number(0, 3)),
			PetID: pet.ID,
		})
	}

	return b
}
