package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomaspav/crtpong/internal/game"
	"github.com/tomaspav/crtpong/internal/sound"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	// No audio device is not fatal; the game just runs silent.
	sounds, err := sound.NewPlayer()
	if err != nil {
		sounds = nil
	}

	reader := bufio.NewReader(os.Stdin)
	if err := game.Run(reader, os.Stdout, game.Options{Sounds: sounds}); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
