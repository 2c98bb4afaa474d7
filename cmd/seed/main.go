package main

import (
	"github.com/inkpost/internal/app"
	"github.com/inkpost/internal/config"
	"github.com/inkpost/internal/logger"
	"github.com/inkpost/internal/provider"
	"github.com/inkpost/internal/service"

	"github.com/joho/godotenv"
)

var demoPosts = []service.CreatePostInput{
	{
		Title:    "Hello, inkpost",
		Content:  "The first post. Categories and tags are created on demand.",
		Category: "Announcements",
		Tags:     []string{"welcome", "meta"},
	},
	{
		Title:    "Writing idiomatic Go",
		Content:  "Accept interfaces, return structs, and keep errors explicit.",
		Category: "Tech",
		Tags:     []string{"go", "style"},
	},
	{
		Title:    "Transactions with GORM",
		Content:  "Create the post, its category and its tag links in one transaction.",
		Category: "Tech",
		Tags:     []string{"go", "database"},
	},
	{
		Title:   "Notes without a category",
		Content: "Posts without a category are shown as uncategorized.",
		Tags:    []string{"meta"},
	},
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := app.InitDatabase(cfg); err != nil {
		stdLog.Fatalf("Failed to prepare database: %v", err)
	}

	container := provider.NewContainer(cfg)
	for _, input := range demoPosts {
		post, err := container.PostService.Create(input)
		if err != nil {
			stdLog.Fatalf("Failed to create post %q: %v", input.Title, err)
		}
		logger.Infow("seed_post_created", "id", post.ID, "title", post.Title)
	}

	logger.Infow("seed_completed", "posts", len(demoPosts))
}
