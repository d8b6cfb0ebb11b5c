package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"tradingadvisor/internal/config"
	"tradingadvisor/internal/keycheck"
)

// validate-key is the verbose diagnostic counterpart of `paictl -op
// validate`: it prints the full request/response trace and a structured
// result that separates logical validation failures from transport ones.
func main() {
	var envPath string
	flag.StringVar(&envPath, "env", os.Getenv("ENV_FILE"), "path to .env (optional)")
	flag.Parse()

	cfg, err := config.Load(envPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	fmt.Println("Loaded Environment Variables:")
	fmt.Println("PERSONAL_AI_BASE_URL:", cfg.PersonalAI.BaseURL)
	fmt.Println("PERSONAL_AI_API_KEY:", keycheck.MaskKey(cfg.PersonalAI.APIKey))

	checker := keycheck.New(cfg.PersonalAI, &http.Client{Timeout: 15 * time.Second})
	checker.Out = os.Stdout

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := checker.Check(ctx)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Printf("Validation Result:\n%s\n", out)

	if result.Status != keycheck.StatusOK {
		os.Exit(1)
	}
}
