package pkg

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/qnkhuat/uchess/pkg/engine"
	"github.com/qnkhuat/uchess/pkg/gui"
)

// LineMode plays g from r: one square such as "e2" per line, applied with
// Select. The board is printed after every line. "reset" and "resign" act
// on the game and "quit" stops reading.
func LineMode(r io.Reader, w io.Writer, g *engine.Game) error {
	gui.DrawASCII(w, g.Snapshot())
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "reset":
			g.Reset()
		case "resign":
			g.Resign(g.Turn())
		default:
			pos, err := engine.ParsePos(line)
			if err != nil {
				fmt.Fprintf(w, "%v\n", err)
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", line, g.Select(pos))
		}
		gui.DrawASCII(w, g.Snapshot())
	}
	return scanner.Err()
}
