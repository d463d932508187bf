package main

import (
	"context"
	"log"

	"github.com/anycomp/marketplace-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("marketplace API failed: %v", err)
	}
}
