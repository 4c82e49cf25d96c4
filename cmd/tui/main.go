package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/theUncluded/430Frontend/internal/config"
	"github.com/theUncluded/430Frontend/internal/logger"
	"github.com/theUncluded/430Frontend/internal/modules/cart"
	"github.com/theUncluded/430Frontend/internal/modules/catalog"
	"github.com/theUncluded/430Frontend/internal/tui"
	"github.com/theUncluded/430Frontend/internal/ui/pointer"
)

func main() {
	cfg := config.Load()

	// The terminal belongs to the UI; logs go to TUI_LOG_FILE or nowhere.
	var out io.Writer = io.Discard
	if path := os.Getenv("TUI_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	log := logger.New(logger.Options{
		Service: "storefront-tui",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Out:     out,
	})

	loader := catalog.NewLoader(catalog.NewClient(cfg.CatalogURL, cfg.CatalogTimeout), log, nil)
	loader.Start(context.Background())
	defer loader.Stop()

	m := tui.New(tui.Deps{
		Loader: loader,
		Cart:   cart.NewService(cart.NewMemoryStore(), log, nil),
		CartID: uuid.NewString(),
		Bus:    pointer.NewBus(),
		Log:    log,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
