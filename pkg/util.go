package pkg

import (
	"log"
	"os"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

const maxNameLength = 20

// NewMatchId returns a readable match id such as "brave-otter".
func NewMatchId() string {
	return petname.Generate(2, "-")
}

// Nickname cleans up a user supplied name, making one up when it is empty.
func Nickname(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < ' ' || r == 0x7f || r == '[' || r == ']' {
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if runes := []rune(name); len(runes) > maxNameLength {
		name = string(runes[:maxNameLength])
	}
	if name == "" {
		return petname.Generate(1, "")
	}
	return name
}

func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}
