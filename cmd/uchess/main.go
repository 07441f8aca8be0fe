package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/qnkhuat/uchess/pkg"
	"github.com/qnkhuat/uchess/pkg/engine"
	"github.com/qnkhuat/uchess/pkg/gui"
	"golang.org/x/term"
)

type mode int

const (
	localMode mode = iota
	remoteMode
	lineMode
)

var errLineModeRemote = errors.New("line mode plays locally, -server needs a terminal")

// pickMode plays in the terminal UI when stdin is a terminal and reads
// squares line by line otherwise.
func pickMode(tty bool, server string) (mode, error) {
	switch {
	case !tty && server != "":
		return 0, errLineModeRemote
	case !tty:
		return lineMode, nil
	case server != "":
		return remoteMode, nil
	default:
		return localMode, nil
	}
}

func main() {
	logPath := flag.String("log", "", "path to log file")
	server := flag.String("server", "", "match server address, play locally when empty (needs a terminal)")
	matchId := flag.String("match", "", "match to join, any open match when empty")
	name := flag.String("name", "", "your name, made up when empty")
	fen := flag.String("fen", "", "start a local game from this FEN")
	themeName := flag.String("theme", gui.ThemeBasic.Name, "color theme")
	themesPath := flag.String("themes", "", "JSON file with extra themes")
	flag.Parse()

	if *logPath != "" {
		pkg.InitLog(*logPath, "CLIENT: ")
	} else {
		log.SetOutput(ioutil.Discard)
	}
	rand.Seed(time.Now().UnixNano())

	g := engine.NewGame()
	if *fen != "" {
		var err error
		if g, err = pkg.GameFromFEN(*fen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	m, err := pickMode(term.IsTerminal(int(os.Stdin.Fd())), *server)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if m == lineMode {
		if err := pkg.LineMode(os.Stdin, os.Stdout, g); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	var themes []gui.ThemeHex
	if *themesPath != "" {
		var err error
		if themes, err = gui.LoadThemes(*themesPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	theme, err := gui.ImportThemes(*themeName, themes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Println("New Client")
	cl := pkg.NewClient(theme)
	if m == localMode {
		cl.PlayLocal(g)
	} else if err := cl.Connect(*server, *matchId, *name); err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to %s: %v\n", *server, err)
		os.Exit(1)
	}

	if err := cl.Run(); err != nil {
		log.Fatal(err)
	}
}
