package main

import (
	"context"
	"flag"
	"log"
	"time"

	"meal-planner-api/config"
	"meal-planner-api/ingest"
)

func main() {
	date := flag.String("date", "", "menu date YYYY-MM-DD (default: today in UTC)")
	flag.Parse()

	cfg := config.Load()
	config.InitDB(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.MenuAPITimeout+30*time.Second)
	defer cancel()

	ingestor := ingest.FromConfig(ctx, cfg, config.DB)

	res, err := ingestor.Run(ctx, *date)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("✅ Ingested %d items for %s (%d new) in %dms", res.Items, res.Date, res.Inserted, res.DurationMS)
}
