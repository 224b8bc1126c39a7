package main

import (
	"flag"

	tea "github.com/charmbracelet/bubbletea"

	"tudu/internal/config"
	"tudu/pkg/kv"
	"tudu/pkg/state"
)

var (
	filePath = flag.String("file", "", "Path to the store file (overrides config)")
	inMemory = flag.Bool("mem", false, "Keep all state in memory, persist nothing")
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	check(err)
	if *filePath != "" {
		cfg.Data = *filePath
	}

	var store kv.Store
	if *inMemory {
		store = kv.NewMemory()
	} else {
		check(cfg.EnsureDataDir())
		store = kv.NewFile(cfg.Data)
	}

	a := newApp(state.New(store), cfg.Celebration.Duration)

	p := tea.NewProgram(a)
	p.EnterAltScreen()
	defer p.ExitAltScreen()
	check(p.Start())
}
