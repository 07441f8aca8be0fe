package pkg

import (
	"bufio"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	MatchIdleTimeout  = 10 * time.Minute
	SshPort           = ":2222"
	ServerPort        = ":1998"
	MessageQueueSize  = 20
	ConnQueueSize     = 10
	JoinTimeout       = 30 * time.Second
)

type ServerConfig struct {
	ListenAddr   string
	SSHAddr      string
	ClientBinary string
	HostKeyFile  string
	Match        MatchConfig
}

type Server struct {
	Config  ServerConfig
	Matches map[string]*Match

	listener net.Listener
	ssh      *ssh.Server
	sync.Mutex
}

func NewServer(cfg ServerConfig) *Server {
	return &Server{
		Config:  cfg,
		Matches: make(map[string]*Match),
	}
}

// Listen accepts game connections until the listener is closed.
func (s *Server) Listen() error {
	listener, err := net.Listen("tcp", s.Config.ListenAddr)
	if err != nil {
		return err
	}
	s.Lock()
	s.listener = listener
	s.Unlock()
	log.Printf("Listening at %s", listener.Addr())

	for {
		conn, err := listener.Accept()
		if err != nil {
			return err
		}
		go s.HandleConn(conn)
	}
}

// HandleConn reads the join request of a new connection and seats it.
func (s *Server) HandleConn(conn net.Conn) {
	conn.SetReadDeadline(time.Now().Add(JoinTimeout))
	reader := bufio.NewReader(conn)
	line, err := reader.ReadBytes('\n')
	if err != nil {
		log.Printf("Failed to read join from %s: %v", conn.RemoteAddr(), err)
		conn.Close()
		return
	}
	conn.SetReadDeadline(time.Time{})

	join, err := decodeJoin(line)
	if err != nil {
		log.Printf("Bad join from %s: %v", conn.RemoteAddr(), err)
		conn.Close()
		return
	}

	m := s.FindMatch(join.MatchId)
	p := NewPlayer(bufferedConn{Conn: conn, r: reader}, join.Name)
	log.Printf("%s (%s) joins match %s", p.Name, conn.RemoteAddr(), m.Id)
	m.AddPlayer(p)
}

func decodeJoin(line []byte) (MessageJoin, error) {
	var transport MessageTransport
	if err := Decode(line, &transport); err != nil {
		return MessageJoin{}, err
	}
	msg, err := Unwrap(transport)
	if err != nil {
		return MessageJoin{}, err
	}
	join, ok := msg.(MessageJoin)
	if !ok {
		return MessageJoin{}, fmt.Errorf("%w: expected join, got %s", ErrUnknownMessage, msg.Type())
	}
	return join, nil
}

// FindMatch returns the match called id, creating it if needed. An empty id
// picks any match with a free seat.
func (s *Server) FindMatch(id string) *Match {
	s.Lock()
	defer s.Unlock()

	if id != "" {
		if m, ok := s.Matches[id]; ok {
			return m
		}
	} else {
		for _, m := range s.Matches {
			if m.HasSeat() {
				return m
			}
		}
		id = NewMatchId()
		for s.Matches[id] != nil {
			id = NewMatchId()
		}
	}

	m := NewMatch(id, s.Config.Match)
	s.Matches[id] = m
	go m.Run()
	log.Printf("Created match %s", id)
	return m
}

// CleanIdleMatches stops matches nobody has been connected to for a while.
func (s *Server) CleanIdleMatches(interval time.Duration) {
	for range time.Tick(interval) {
		s.cleanIdle(time.Now(), MatchIdleTimeout)
	}
}

func (s *Server) cleanIdle(now time.Time, timeout time.Duration) []string {
	s.Lock()
	defer s.Unlock()

	var cleaned []string
	for id, m := range s.Matches {
		if m.Idle(now, timeout) {
			m.Stop()
			delete(s.Matches, id)
			cleaned = append(cleaned, id)
			log.Printf("Cleaned up match %s", id)
		}
	}
	return cleaned
}

// ListenSSH serves the terminal client to ssh users: each session runs the
// client binary in a pseudo-terminal, connected back to this server.
func (s *Server) ListenSSH() error {
	signer, err := hostSigner(s.Config.HostKeyFile)
	if err != nil {
		return err
	}
	srv := &ssh.Server{
		Addr:        s.Config.SSHAddr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.sshHandle,
	}
	srv.AddHostKey(signer)

	s.Lock()
	s.ssh = srv
	s.Unlock()
	log.Printf("SSH listening at %s", s.Config.SSHAddr)
	return srv.ListenAndServe()
}

// hostSigner loads the host key from path, or makes a throwaway ed25519 key
// when no path is given.
func hostSigner(path string) (gossh.Signer, error) {
	if path != "" {
		pem, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return gossh.ParsePrivateKey(pem)
	}
	log.Printf("No host key given, generating an ephemeral one")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return gossh.NewSignerFromKey(key)
}

func (s *Server) sshHandle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	args := []string{"-server", s.Config.ListenAddr, "-name", sess.User()}
	if len(sess.Command()) > 0 {
		args = append(args, "-match", sess.Command()[0])
	}
	cmd := exec.CommandContext(cmdCtx, s.Config.ClientBinary, args...)
	cmd.Env = append(sess.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.Start(cmd)
	if err != nil {
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	cmd.Wait()
}

func (s *Server) Close() {
	s.Lock()
	defer s.Unlock()
	if s.listener != nil {
		s.listener.Close()
	}
	if s.ssh != nil {
		s.ssh.Close()
	}
	for id, m := range s.Matches {
		m.Stop()
		delete(s.Matches, id)
	}
}

// bufferedConn keeps bytes read ahead while parsing the join request.
type bufferedConn struct {
	net.Conn
	r *bufio.Reader
}

func (c bufferedConn) Read(p []byte) (int, error) {
	return c.r.Read(p)
}
