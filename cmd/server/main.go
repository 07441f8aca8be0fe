package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qnkhuat/uchess/pkg"
)

var (
	cfg     pkg.ServerConfig
	logPath string

	done = make(chan bool)
)

func init() {
	flag.StringVar(&cfg.ListenAddr, "listen", pkg.ServerPort, "address to host matches on")
	flag.StringVar(&cfg.SSHAddr, "ssh", "", "host the client over SSH on this address, e.g. "+pkg.SshPort)
	flag.StringVar(&cfg.ClientBinary, "client", "uchess", "path to the uchess client, used for SSH sessions")
	flag.StringVar(&cfg.HostKeyFile, "hostkey", "", "SSH host key file, a throwaway key is generated when empty")
	flag.DurationVar(&cfg.Match.Clock, "clock", 0, "time per side, 0 for untimed games")
	flag.DurationVar(&cfg.Match.Increment, "increment", 0, "time added after each move")
	flag.StringVar(&logPath, "log", "", "path to log file, stderr when empty")
}

func main() {
	flag.Parse()
	if logPath != "" {
		pkg.InitLog(logPath, "SERVER: ")
	}
	rand.Seed(time.Now().UnixNano())
	log.Println("Server started")

	s := pkg.NewServer(cfg)
	go s.CleanIdleMatches(time.Minute)

	go func() {
		if err := s.Listen(); err != nil {
			log.Printf("Listener stopped: %v", err)
			done <- true
		}
	}()
	if cfg.SSHAddr != "" {
		go func() {
			if err := s.ListenSSH(); err != nil {
				log.Printf("SSH stopped: %v", err)
				done <- true
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	<-done
	s.Close()
}
