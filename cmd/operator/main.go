package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"cs-chat-simulator/config"
	"cs-chat-simulator/internal/agent"
	"cs-chat-simulator/internal/agent/tools"
	"cs-chat-simulator/internal/session"
	"cs-chat-simulator/internal/suggestion"
	"cs-chat-simulator/pkg/log"
)

// main is the operator console. It posts customer turns to the chat API,
// reassembles the frame stream into a pending suggestion, and lets the
// operator edit, send, or confirm recommended actions before anything runs.
//
// Commands:
//   <text>        post a customer message
//   /edit <text>  replace the pending suggestion
//   /cancel       undo edits to the pending suggestion
//   /send         approve and send the pending suggestion
//   /run <n>      execute recommended action n (operator confirmation)
//   /quit         exit
func main() {
	apiURL := flag.String("api", "http://localhost:8080", "chat service base URL")
	useMock := flag.Bool("mock", false, "request mock-data turns")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: 2 * time.Minute}

	registry := agent.NewToolRegistry()
	tools.RegisterAll(registry, *apiURL, httpClient)
	dispatcher := agent.NewDispatcher(registry, logger)

	identity := session.New(cfg.Session.UserID)
	asm := suggestion.NewAssembler(logger, dispatcher, registry, identity)

	logger.Infof(ctx, "Operator console connected to %s as %s", *apiURL, identity.UserID)
	fmt.Println("Type a customer message, or /quit to exit.")

	stdin := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !stdin.Scan() {
			return
		}
		line := strings.TrimSpace(stdin.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/quit":
			return
		case line == "/send":
			msg, err := asm.Send()
			if err != nil {
				fmt.Println("nothing to send:", err)
				continue
			}
			fmt.Printf("[sent] %s\n", msg.Content)
		case line == "/cancel":
			if err := asm.CancelEdit(); err != nil {
				fmt.Println(err)
			}
			printState(asm)
		case strings.HasPrefix(line, "/edit "):
			if err := asm.Edit(strings.TrimPrefix(line, "/edit ")); err != nil {
				fmt.Println(err)
			}
			printState(asm)
		case strings.HasPrefix(line, "/run "):
			runAction(ctx, asm, strings.TrimPrefix(line, "/run "))
		default:
			if err := postTurn(ctx, httpClient, *apiURL, asm, line, identity, *useMock); err != nil {
				logger.Errorf(ctx, "turn failed: %v", err)
			}
			printState(asm)
		}
	}
}

func postTurn(ctx context.Context, client *http.Client, apiURL string, asm *suggestion.Assembler, content string, identity session.Info, useMock bool) error {
	asm.BeginTurn(content)

	body, err := json.Marshal(map[string]interface{}{
		"messages":    asm.Messages(),
		"useMockData": useMock,
		"sessionInfo": map[string]string{
			"userId":    identity.UserID,
			"sessionId": identity.SessionID,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+"/api/v1/chat", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", identity.SessionID)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chat endpoint returned %d", resp.StatusCode)
	}

	return asm.Consume(ctx, resp.Body)
}

func runAction(ctx context.Context, asm *suggestion.Assembler, arg string) {
	idx, err := strconv.Atoi(strings.TrimSpace(arg))
	actions := asm.Actions()
	if err != nil || idx < 1 || idx > len(actions) {
		fmt.Println("usage: /run <action number>")
		return
	}

	if err := asm.ExecuteAction(ctx, actions[idx-1].ID); err != nil {
		fmt.Println("action failed:", err)
	}
	printState(asm)
}

func printState(asm *suggestion.Assembler) {
	if pending, ok := asm.Pending(); ok {
		fmt.Printf("\n[suggested reply · %s]\n%s\n", asm.State(), pending.Content)
	}
	actions := asm.Actions()
	if len(actions) > 0 {
		fmt.Println("\nrecommended actions (confirm with /run <n>):")
		for i, act := range actions {
			params, _ := json.Marshal(act.Parameters)
			fmt.Printf("  %d. %s %s\n", i+1, act.Name, params)
		}
	}
	fmt.Println()
}
