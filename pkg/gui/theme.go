package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name           string      `json:"name"`
	SquareDark     tcell.Color `json:"squareDark"`
	SquareLight    tcell.Color `json:"squareLight"`
	SquareSelected tcell.Color `json:"squareSelected"`
	SquareTarget   tcell.Color `json:"squareTarget"`
	SquareCheck    tcell.Color `json:"squareCheck"`
	White          tcell.Color `json:"white"`
	Black          tcell.Color `json:"black"`
	Rank           tcell.Color `json:"rank"`
	File           tcell.Color `json:"file"`
	Status         tcell.Color `json:"status"`
	MoveBox        tcell.Color `json:"moveBox"`
}

// ThemeHex is the on-disk form of a Theme
type ThemeHex struct {
	Name           string `json:"name"`
	SquareDark     string `json:"squareDark"`
	SquareLight    string `json:"squareLight"`
	SquareSelected string `json:"squareSelected"`
	SquareTarget   string `json:"squareTarget"`
	SquareCheck    string `json:"squareCheck"`
	White          string `json:"white"`
	Black          string `json:"black"`
	Rank           string `json:"rank"`
	File           string `json:"file"`
	Status         string `json:"status"`
	MoveBox        string `json:"moveBox"`
}

var ErrNoTheme = errors.New("theme: no theme found")

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareSelected.Hex()),
		fmtHex(t.SquareTarget.Hex()),
		fmtHex(t.SquareCheck.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
		fmtHex(t.Status.Hex()),
		fmtHex(t.MoveBox.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareSelected),
		tcell.GetColor(t.SquareTarget),
		tcell.GetColor(t.SquareCheck),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
		tcell.GetColor(t.Status),
		tcell.GetColor(t.MoveBox),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument, falling back
// to the built-in themes
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}
	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrNoTheme, want)
}

// LoadThemes reads a JSON array of ThemeHex from path
func LoadThemes(path string) ([]ThemeHex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var themes []ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("theme: %s: %w", path, err)
	}
	return themes, nil
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color180,     // SquareDark
	tcell.Color223,     // SquareLight
	tcell.Color226,     // SquareSelected
	tcell.Color150,     // SquareTarget
	tcell.Color203,     // SquareCheck
	tcell.Color231,     // White
	tcell.Color232,     // Black
	tcell.Color247,     // Rank
	tcell.Color247,     // File
	tcell.Color160,     // Status
	tcell.ColorDefault, // MoveBox
}

// ThemeMono suits terminals with few colors
var ThemeMono = Theme{
	"mono",             // Name
	tcell.ColorGray,    // SquareDark
	tcell.ColorSilver,  // SquareLight
	tcell.ColorYellow,  // SquareSelected
	tcell.ColorGreen,   // SquareTarget
	tcell.ColorRed,     // SquareCheck
	tcell.ColorWhite,   // White
	tcell.ColorBlack,   // Black
	tcell.ColorDefault, // Rank
	tcell.ColorDefault, // File
	tcell.ColorDefault, // Status
	tcell.ColorDefault, // MoveBox
}

var Themes = []Theme{ThemeBasic, ThemeMono}
