package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"tourweaver/internal/ai"
	"tourweaver/internal/config"
	"tourweaver/internal/enrich"
	"tourweaver/internal/itinerary"
	"tourweaver/internal/logger"
	"tourweaver/internal/maps"
	"tourweaver/internal/photos"
	"tourweaver/internal/service"
)

func main() {
	var req itinerary.TripRequest
	var budget string
	flag.StringVar(&req.Location, "location", "Kyoto, Japan", "destination")
	flag.IntVar(&req.Days, "days", 5, "length of stay")
	flag.StringVar(&req.CheckInDate, "checkin", time.Now().AddDate(0, 1, 0).Format(itinerary.DateLayout), "check-in date (YYYY-MM-DD)")
	flag.IntVar(&req.Adults, "adults", 2, "number of adults")
	flag.Float64Var(&req.MinRating, "rating", 4, "minimum hotel rating")
	flag.StringVar(&budget, "budget", "", "Budget, Mid-Range or Luxury")
	flag.Parse()
	req.Budget = itinerary.BudgetTier(budget)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()
	gen, err := ai.NewGenerator(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("Failed to initialize generator: %v", err)
	}
	if c, ok := gen.(io.Closer); ok {
		defer c.Close()
	}

	hotels, err := maps.NewHotelSearcher(cfg.Places.APIKey, cfg.Places.MaxHotels)
	if err != nil {
		log.Fatalf("Failed to initialize hotel search: %v", err)
	}
	enricher := enrich.NewService(
		photos.NewFinder(cfg.Photos.UnsplashKey, cfg.Photos.FallbackURL),
		hotels,
		enrich.Config{FallbackURL: cfg.Photos.FallbackURL, Concurrency: cfg.Photos.Concurrency},
		zl,
	)
	planner := service.NewTripPlanner(gen, enricher, service.Options{Timeout: cfg.AI.Timeout, EnrichHotels: cfg.Places.Enrich}, zl)

	fmt.Printf("Planning %d days in %s from %s (%s)\n", req.Days, req.Location, req.CheckInDate, req.BudgetLabel())
	result := planner.Plan(ctx, req)
	if !result.Success {
		log.Fatal(result.Error)
	}
	printView(*result.Data)
}

func printView(v itinerary.View) {
	fmt.Println("\n== Destinations ==")
	if !v.Destinations.Available {
		fmt.Println(v.Destinations.Placeholder)
	}
	for _, d := range v.Destinations.Items {
		fmt.Printf("- %s: %s\n  %s\n", d.Name, d.Description, d.ImageURL)
	}

	fmt.Println("\n== Itinerary ==")
	if !v.Itinerary.Available {
		fmt.Println(v.Itinerary.Placeholder)
	}
	for _, d := range v.Itinerary.Days {
		fmt.Printf("Day %d\n  %s\n", d.Day, strings.ReplaceAll(d.Activities, "\n", "\n  "))
	}

	fmt.Println("\n== Hotels ==")
	if !v.Hotels.Available {
		fmt.Println(v.Hotels.Placeholder)
	}
	if v.Hotels.Summary != "" {
		fmt.Println(v.Hotels.Summary)
	}
	for _, h := range v.Hotels.Items {
		fmt.Printf("- %s (%s) %d/5, %s, %s\n", h.Hotel.Name, h.Hotel.Class, h.Stars, h.ReviewsText, h.PriceText)
	}

	fmt.Println("\n== Packing list ==")
	if !v.PackingList.Available {
		fmt.Println(v.PackingList.Placeholder)
	}
	for _, item := range v.PackingList.Items {
		fmt.Printf("[ ] %s\n", item)
	}
}
