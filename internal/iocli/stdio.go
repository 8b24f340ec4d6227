package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio reads from an input stream and writes to an output stream.
// Passwords are read without echo when the input is a terminal.
type Stdio struct {
	in     *bufio.Reader
	out    io.Writer
	termFd int
	isTerm bool
}

// NewStdio returns IO bound to os.Stdin and os.Stdout.
func NewStdio() IO {
	return NewStreams(os.Stdin, os.Stdout)
}

// NewStreams returns IO bound to the given streams.
func NewStreams(in io.Reader, out io.Writer) *Stdio {
	s := &Stdio{
		in:  bufio.NewReader(in),
		out: out,
	}
	// Скрытый ввод пароля возможен только для терминала
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.termFd = int(f.Fd())
		s.isTerm = true
	}
	return s
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	s.Printf("%s", prompt)
	if !s.isTerm {
		// Ввод из pipe или файла - читаем строку как есть
		return s.readLine()
	}

	pwBytes, err := term.ReadPassword(s.termFd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

// readLine читает одну строку; последняя строка без перевода строки тоже допустима
func (s *Stdio) readLine() (string, error) {
	input, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && input != "" {
			return strings.TrimRight(input, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(input, "\r\n"), nil
}
