// scotty-chat is a terminal client for the Ask Scotty widget. By default it
// talks to a running scotty server; with -direct it calls the completion
// provider itself using the local configuration.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/lilswapnil/scotty/internal/config"
	"github.com/lilswapnil/scotty/internal/gateway"
	"github.com/lilswapnil/scotty/internal/llm"
	"github.com/lilswapnil/scotty/internal/logger"
	"github.com/lilswapnil/scotty/internal/persona"
	"github.com/lilswapnil/scotty/internal/session"
	"github.com/lilswapnil/scotty/internal/tui"
	"github.com/lilswapnil/scotty/internal/widget"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "base URL of a running scotty server")
	direct := flag.Bool("direct", false, "call the completion provider directly instead of a server")
	question := flag.String("ask", "", "open the widget with this question pre-submitted")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		logger.L.Debug("loaded .env")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	logger.SetLevel("error") // keep log noise out of the TUI

	var completer widget.Completer
	if *direct {
		completer = gateway.New(llm.NewClient(cfg.LLM), cfg.LLM)
	} else {
		completer = gateway.NewClient(*serverURL, 60*time.Second)
	}

	store := session.NewStore()
	controller := widget.New(store, completer, persona.Instruction(cfg.Persona))

	p := tea.NewProgram(tui.NewModel(controller))
	store.Subscribe(func() { p.Send(tui.RefreshMsg{}) })

	if *question != "" {
		go func() {
			if err := controller.OpenWithQuestion(context.Background(), *question); err != nil {
				logger.L.Error("initial question failed", "error", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "chat UI failed:", err)
		os.Exit(1)
	}
}
