package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console wraps the interactive input and output streams. Tests drive it
// with byte buffers instead of stdin/stdout.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// ReadLine prompts and reads one line. Returns io.EOF when input ends.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// ReadInt prompts for an integer, re-prompting on malformed input. An empty
// line yields -1 so the command can treat it as "no value".
func (c *Console) ReadInt(prompt string) (int, error) {
	for {
		s, err := c.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return -1, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			c.Printf("Invalid number, try again\n")
			continue
		}
		return n, nil
	}
}

// ReadInt64 is ReadInt for 64-bit identifiers.
func (c *Console) ReadInt64(prompt string) (int64, error) {
	for {
		s, err := c.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return -1, nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.Printf("Invalid number, try again\n")
			continue
		}
		return n, nil
	}
}
