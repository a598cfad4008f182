// Command mudview is a minimal demo client: it connects to a MUD,
// feeds the raw stream through transform.Transformer, and writes the
// resulting text to standard output. It discards every fragment kind
// except Text and LineBreak.
package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/muesli/termenv"

	"github.com/drake/rune/ansi"
	"github.com/drake/rune/output"
	"github.com/drake/rune/transform"
)

func main() {
	host := flag.String("host", "", "MUD host to connect to")
	port := flag.Int("port", 23, "MUD port")
	world := flag.String("world", "", "named entry from -worlds file, instead of -host/-port")
	worldsFile := flag.String("worlds", "", "path to a YAML world list")
	ttype := flag.String("ttype", "unknown", "terminal identification to advertise")
	raw := flag.Bool("raw", false, "render fragments as raw ANSI escapes instead of plain text")
	flag.Parse()

	addr, err := resolveAddr(*host, *port, *world, *worldsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer conn.Close()

	cfg := transform.DefaultConfig()
	cfg.TerminalIdentification = *ttype
	cfg.Naws = true
	t := transform.New(cfg)

	render := writeFragments
	if *raw {
		profile := termenv.ColorProfile()
		render = func(out io.Writer, fragments []output.Fragment) error {
			return writeFragmentsRaw(out, fragments, profile)
		}
	}

	if err := run(conn, t, os.Stdout, render); err != nil && err != io.EOF {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run drives the read/transform/write/reply loop until the connection
// closes or an I/O error occurs (spec.md §6 "Demo CLI").
func run(conn net.Conn, t *transform.Transformer, out io.Writer, render func(io.Writer, []output.Fragment) error) error {
	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			fragments := t.Receive(buf[:n])
			if werr := render(out, fragments); werr != nil {
				return werr
			}
			if reply := t.DrainInput(); len(reply) > 0 {
				if _, werr := conn.Write(reply); werr != nil {
					return werr
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// writeFragments discards style information, writing only Text content
// and LineBreak newlines (the default, pipe-friendly rendering).
func writeFragments(out io.Writer, fragments []output.Fragment) error {
	for _, f := range fragments {
		switch f.Kind {
		case output.KindText:
			if _, err := io.WriteString(out, f.Text.Content); err != nil {
				return err
			}
		case output.KindLineBreak:
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeFragmentsRaw renders Text fragments as termenv-styled raw ANSI
// escapes (-raw mode), for piping into a real terminal instead of a
// plain-text consumer.
func writeFragmentsRaw(out io.Writer, fragments []output.Fragment, profile termenv.Profile) error {
	for _, f := range fragments {
		switch f.Kind {
		case output.KindText:
			if _, err := io.WriteString(out, styledANSI(f.Text, profile)); err != nil {
				return err
			}
		case output.KindLineBreak:
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// styledANSI renders a TextFragment's content under its style as a raw
// ANSI escape sequence, resolving the color's origin (ANSI-16,
// xterm-256, RGB24/named) through the given termenv profile.
func styledANSI(frag ansi.TextFragment, profile termenv.Profile) string {
	s := termenv.String(frag.Content)
	if col, ok := termenvColor(frag.Style.Fg, profile); ok {
		s = s.Foreground(col)
	}
	if col, ok := termenvColor(frag.Style.Bg, profile); ok {
		s = s.Background(col)
	}
	if frag.Style.Bold {
		s = s.Bold()
	}
	if frag.Style.Italic {
		s = s.Italic()
	}
	if frag.Style.Underline {
		s = s.Underline()
	}
	if frag.Style.Strikethrough {
		s = s.CrossOut()
	}
	if frag.Style.Blink {
		s = s.Blink()
	}
	if frag.Style.Inverse {
		s = s.Reverse()
	}
	return s.String()
}

func termenvColor(c ansi.Color, profile termenv.Profile) (termenv.Color, bool) {
	switch c.Origin {
	case ansi.ColorAnsi16, ansi.ColorXterm256:
		return profile.Color(strconv.Itoa(int(c.Index))), true
	case ansi.ColorRGB, ansi.ColorNamed:
		return profile.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
	default:
		return nil, false
	}
}
