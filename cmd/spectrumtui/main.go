package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"wavespec/internal/config"
	"wavespec/internal/editor"
	"wavespec/internal/tui"
)

func main() {
	flags := config.BindFlags(flag.CommandLine)
	name := flag.String("name", "custom", "profile name used when saving")
	logPath := flag.String("log", "", "append log output to this file instead of discarding it")
	flag.Parse()

	s, loader, err := flags.Setup()
	if err != nil {
		log.Fatal(err)
	}

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	// The screen owns the terminal from here on.
	log.SetOutput(out)
	tui.NewView(screen, editor.NewModel(s), loader, *name).Run()
}
