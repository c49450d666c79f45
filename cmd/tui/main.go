package main

import (
	"flag"
	"fmt"
	"os"

	"algoeconomics/internal/config"
	"algoeconomics/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	presetsFile := flag.String("presets-file", "", "YAML preset file layered over the built-in presets")
	flag.Parse()

	set := model.DefaultPresets()
	if *presetsFile != "" {
		var err error
		if set, err = config.LoadPresetSet(*presetsFile); err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
	}

	m := newModel(set)
	defer m.close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
