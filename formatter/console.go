package formatter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/bimap"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for printing.
type Config struct {
	ColumnWidth int            // width of each of the two columns, in ‘en’s
	Colors      bool           // colorize output
	Reverse     bool           // print in Right order, Right column first
	Context     *uax11.Context // context for character width; nil means Latin
	LeftColor   *color.Color   // color of the Left column; nil means a default
	RightColor  *color.Color   // color of the Right column; nil means a default
}

const (
	minColumnWidth     = 4
	defaultColumnWidth = 30
	separator          = " │ "
	ellipsis           = "…"
)

var setupGraphemes sync.Once

// Print outputs the pairs of a bimap to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print[L, R any](m *bimap.Bimap[L, R], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(m, os.Stdout, config)
}

// Output writes the pairs of a bimap to out as a two-column table, one pair
// per line, in Left order (or Right order, if config.Reverse is set).
//
// Neither of the arguments may be nil. However, it is safe to have
// config.Context set to nil. In this case, uax11.LatinContext is used.
func Output[L, R any](m *bimap.Bimap[L, R], out io.Writer, config *Config) error {
	if m == nil || out == nil || config == nil {
		return errors.New("illegal argument: nil")
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := newPrinter(config)
	var err error
	if config.Reverse {
		err = p.row(out, "right", "left", true)
	} else {
		err = p.row(out, "left", "right", true)
	}
	if err != nil {
		return err
	}
	emit := func(a, b any) bool {
		err = p.row(out, fmt.Sprint(a), fmt.Sprint(b), false)
		return err == nil
	}
	if config.Reverse {
		for r, l := range m.AllByRight() {
			if !emit(r, l) {
				break
			}
		}
	} else {
		for l, r := range m.All() {
			if !emit(l, r) {
				break
			}
		}
	}
	if err != nil {
		T().Errorf("bimap formatter: %v", err)
	}
	return err
}

type printer struct {
	width   int
	context *uax11.Context
	colors  bool
	first   *color.Color
	second  *color.Color
	header  *color.Color
}

func newPrinter(config *Config) *printer {
	p := &printer{
		width:   config.ColumnWidth,
		context: config.Context,
		colors:  config.Colors,
		first:   copyColor(config.LeftColor),
		second:  copyColor(config.RightColor),
		header:  color.New(color.Bold),
	}
	if p.width < minColumnWidth {
		p.width = defaultColumnWidth
	}
	if p.context == nil {
		p.context = uax11.LatinContext
	}
	if p.first == nil {
		p.first = color.New(color.FgBlue)
	}
	if p.second == nil {
		p.second = color.New(color.FgRed)
	}
	if config.Reverse {
		p.first, p.second = p.second, p.first
	}
	if p.colors {
		// callers asked for colors, even if stdout is no terminal
		p.first.EnableColor()
		p.second.EnableColor()
		p.header.EnableColor()
	}
	return p
}

// copyColor returns a private copy of c, so enabling colors for output does
// not change the caller's colors. It returns nil for nil.
func copyColor(c *color.Color) *color.Color {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// row writes one table line.
func (p *printer) row(w io.Writer, a, b string, isHeader bool) error {
	a, b = p.fit(a), p.fit(b)
	ca, cb := p.first, p.second
	if isHeader {
		ca, cb = p.header, p.header
	}
	if err := p.cell(w, ca, a); err != nil {
		return err
	}
	if _, err := io.WriteString(w, separator); err != nil {
		return err
	}
	if err := p.cell(w, cb, strings.TrimRight(b, " ")); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (p *printer) cell(w io.Writer, c *color.Color, s string) error {
	if p.colors {
		_, err := c.Fprint(w, s)
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// fit truncates or pads s to exactly the column width.
func (p *printer) fit(s string) string {
	s = strings.NewReplacer("\n", "⏎", "\t", " ").Replace(s)
	width := p.cellWidth(s)
	if width > p.width {
		runes := []rune(s)
		for len(runes) > 0 {
			runes = runes[:len(runes)-1]
			s = string(runes) + ellipsis
			if width = p.cellWidth(s); width <= p.width {
				break
			}
		}
	}
	if width < p.width {
		s += strings.Repeat(" ", p.width-width)
	}
	return s
}

// cellWidth returns the number of display cells s occupies. Printable ASCII
// is one cell per byte; uax11 rates some ASCII (digits) as ambiguous.
func (p *printer) cellWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPrintableASCII(s) {
		return len(s)
	}
	return uax11.StringWidth(grapheme.StringFromString(s), p.context)
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width, splits it into two columns and switches on colors.
func ConfigFromTerminal() *Config {
	config := &Config{ColumnWidth: defaultColumnWidth}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = true
		w, _, err := term.GetSize(fd)
		if err == nil {
			cw := (w - utf8.RuneCountInString(separator)) / 2
			if cw > 60 {
				cw = 60
			} else if cw < minColumnWidth {
				cw = minColumnWidth
			}
			config.ColumnWidth = cw
		}
	}
	T().P("format", "console").Infof("setting column width to %d en", config.ColumnWidth)
	return config
}
