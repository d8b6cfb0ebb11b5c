package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"tradingadvisor/internal/config"
	"tradingadvisor/internal/logging"
	"tradingadvisor/internal/personalai"
)

// paictl exercises the Personal AI client from the command line: send a
// message or instruction, upload text/URLs/memories, invite users, verify
// webhook tokens.
func main() {
	var op string
	var text string
	var title string
	var tags string
	var sourceName string
	var userName string
	var sessionID string
	var domainName string
	var email string
	var token string
	var challenge string
	var rawURL string
	var envPath string

	flag.StringVar(&op, "op", "message", "operation: message|instruction|upload-text|upload-url|memory|invite|validate|validate-token")
	flag.StringVar(&text, "text", "", "message, document, or memory text")
	flag.StringVar(&title, "title", "", "upload title (optional)")
	flag.StringVar(&tags, "tags", "", "comma-delimited tags (optional)")
	flag.StringVar(&sourceName, "source", "", "source app name (optional)")
	flag.StringVar(&userName, "user", "", "user name (optional)")
	flag.StringVar(&sessionID, "session", "", "session id to continue a conversation (optional)")
	flag.StringVar(&domainName, "domain", "", "AI persona domain override (optional)")
	flag.StringVar(&email, "email", "", "invite email for -op invite")
	flag.StringVar(&token, "token", "", "webhook token for -op validate-token")
	flag.StringVar(&challenge, "challenge", "", "webhook challenge for -op validate-token")
	flag.StringVar(&rawURL, "url", "", "URL for -op upload-url")
	flag.StringVar(&envPath, "env", os.Getenv("ENV_FILE"), "path to .env (optional)")
	flag.Parse()

	cfg, err := config.Load(envPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.Logging)

	client, err := personalai.NewClient(cfg.PersonalAI.APIKey,
		personalai.WithBaseURL(cfg.PersonalAI.BaseURL),
		personalai.WithDomainName(cfg.PersonalAI.DomainName),
		personalai.WithLogger(logger),
		personalai.WithDebug(cfg.Logging.Enabled && cfg.Logging.Development()),
	)
	if err != nil {
		log.Fatalf("personalai: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var resp *http.Response
	switch op {
	case "message":
		resp, err = client.SendAIMessage(ctx, personalai.MessageParams{
			Text:       text,
			DomainName: domainName,
			UserName:   userName,
			SessionID:  sessionID,
			SourceName: sourceName,
		})
	case "instruction":
		resp, err = client.SendAIInstruction(ctx, personalai.MessageParams{
			Text:       text,
			DomainName: domainName,
			UserName:   userName,
			SessionID:  sessionID,
			SourceName: sourceName,
		})
	case "upload-text":
		resp, err = client.UploadDocument(ctx, personalai.DocumentParams{
			Text:       text,
			Title:      title,
			DomainName: domainName,
			Tags:       tags,
		})
	case "upload-url":
		resp, err = client.UploadURL(ctx, personalai.URLParams{
			URL:        rawURL,
			Title:      title,
			DomainName: domainName,
			Tags:       tags,
		})
	case "memory":
		resp, err = client.UploadMemory(ctx, personalai.MemoryParams{
			Text:       text,
			SourceName: sourceName,
			DomainName: domainName,
			Tags:       tags,
		})
	case "invite":
		resp, err = client.SendExternalInvite(ctx, email, domainName)
	case "validate":
		resp, err = client.ValidateAPIKey(ctx)
	case "validate-token":
		resp, err = client.ValidateToken(ctx, token, challenge)
	default:
		log.Fatalf("unknown op %q", op)
	}
	if err != nil {
		log.Fatalf("%s: %v", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}
	fmt.Printf("%d\n%s\n", resp.StatusCode, body)
}
