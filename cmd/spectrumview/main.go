package main

import (
	"flag"
	"log"
	"runtime"

	"wavespec/internal/app"
	"wavespec/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flags := config.BindFlags(flag.CommandLine)
	fontPath := flag.String("font", "", "TTF font for the editor text; empty uses the built-in font")
	name := flag.String("name", "custom", "profile name used when saving")
	flag.Parse()

	s, loader, err := flags.Setup()
	if err != nil {
		log.Fatal(err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("init glfw: %v", err)
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow("wavespec")
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.New(window, s, app.Options{
		FontPath:    *fontPath,
		ProfileName: *name,
		Profiles:    loader,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer a.Dispose()

	a.Run()
}
