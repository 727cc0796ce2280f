package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ray-crawler/audio"
	"github.com/lixenwraith/ray-crawler/engine"
)

var muteFlag = flag.Bool("mute", false, "Disable audio feedback")

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal on every exit path, crash included, before
	// anything is written to stderr
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nRAY-CRAWLER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sound := audio.NewSound(*muteFlag)
	defer sound.Close()
	defer screen.Fini()

	screen.HideCursor()

	engine.NewGame(screen, sound).Run()
}
