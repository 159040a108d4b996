// Package commands assembles the vibeflip command tree.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/vibeflip/vibeflip/pkg/assign"
	"github.com/vibeflip/vibeflip/pkg/bridge"
	"github.com/vibeflip/vibeflip/pkg/catalog"
	"github.com/vibeflip/vibeflip/pkg/history"
	"github.com/vibeflip/vibeflip/pkg/store"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vibeflip",
		Short: "One motivation card a day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addToday(topLevel)
	addHistory(topLevel)
	addLang(topLevel)
	addWidget(topLevel)
	addOpen(topLevel)
	addVersion(topLevel)
}

// services is the per-process composition root: one store, one history,
// one engine, one bridge, built at command start.
type services struct {
	cfg     *store.Config
	kv      store.KV
	catalog *catalog.Catalog
	history *history.Store
	engine  *assign.Engine
	bridge  *bridge.Bridge
}

func wire() (*services, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	kv := store.Open(cfg.SharedPath)
	legacy := store.Open(cfg.LegacyPath)
	cat := catalog.Load()
	hist := history.Open(kv, legacy)

	eng := assign.New(cat, hist)
	eng.Window = cfg.Window

	return &services{
		cfg:     cfg,
		kv:      kv,
		catalog: cat,
		history: hist,
		engine:  eng,
		bridge:  bridge.New(kv, hist),
	}, nil
}
