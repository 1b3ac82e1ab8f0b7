// Command main runs the content seeder.
package main

import (
	"context"
	"flag"
	"log"

	"soulforge/internal/config"
	"soulforge/internal/seed"
	"soulforge/internal/storage"
)

func main() {
	numEchoes := flag.Int("echoes", 30, "Number of fake echoes to scatter across chapters")
	numWhispers := flag.Int("whispers", 10, "Number of fake whispers to add")
	shouldClean := flag.Bool("clean", true, "Clear stored collections before seeding")
	flag.Parse()

	log.Println("Content Seeder")
	log.Println("==============")
	log.Printf("Target: %d echoes, %d whispers, clean=%v\n", *numEchoes, *numWhispers, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	st, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() { _ = st.Close() }()

	ctx := context.Background()
	s := seed.NewSeeder(st)

	if *shouldClean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}
	if err := s.Defaults(ctx); err != nil {
		log.Fatalf("Default seeding failed: %v", err)
	}
	if *numEchoes > 0 {
		if err := s.FakeEchoes(ctx, *numEchoes); err != nil {
			log.Fatalf("Echo seeding failed: %v", err)
		}
	}
	if *numWhispers > 0 {
		if err := s.FakeWhispers(ctx, *numWhispers); err != nil {
			log.Fatalf("Whisper seeding failed: %v", err)
		}
	}

	log.Println("Seeding complete")
}
