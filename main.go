package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"jurisdiction-engine/internal/handler"
	"jurisdiction-engine/internal/rules"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := rules.Load(); err != nil {
		log.Printf("Rule registry unavailable, using builtin rules: %v", err)
	}

	log.Printf("Jurisdiction engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, handler.Route); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
