package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/domain/models"
	"portfolio/internal/remote"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// fixture is the seed file format: a list of project drafts.
type fixture struct {
	Projects []struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		TechStack   string `yaml:"techStack"`
		GithubURL   string `yaml:"githubUrl"`
		LiveDemoURL string `yaml:"liveDemoUrl"`
	} `yaml:"projects"`
}

func main() {
	file := flag.String("file", "seed.yaml", "YAML fixture with projects to create")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read fixture: %v", err)
	}

	var fix fixture
	if err := yaml.Unmarshal(data, &fix); err != nil {
		log.Fatalf("Failed to parse fixture: %v", err)
	}

	client := remote.NewClient(cfg.APIBaseURL)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Printf("Seeding %d projects into %s", len(fix.Projects), cfg.APIBaseURL)

	for _, p := range fix.Projects {
		draft := models.ProjectDraft{
			Title:       p.Title,
			Description: p.Description,
			TechStack:   p.TechStack,
			GithubURL:   p.GithubURL,
			LiveDemoURL: p.LiveDemoURL,
		}
		created, err := client.Create(ctx, draft)
		if err != nil {
			log.Fatalf("Failed to create %q: %v", p.Title, err)
		}
		log.Printf("Created %q (id %s)", created.Title, created.ID)
	}

	log.Println("Done")
}
