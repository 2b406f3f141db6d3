// Package main is a minimal interactive demo for the qedit engine.
// It renders the buffer in a terminal; typing inserts at the cursor,
// Backspace deletes, Ctrl+Z undoes, and Ctrl+Q quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/qedit/editor"
	"github.com/dshills/qedit/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg := config.Default()
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if flag.NArg() > 0 {
		cfg.File = flag.Arg(0)
	}

	ed, err := newEditor(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	loop(screen, ed)
	return 0
}

// newEditor builds the editor from config, loading the configured file
// when it exists.
func newEditor(cfg config.Config) (*editor.Editor, error) {
	var opts []editor.Option
	if cfg.MaxUndoEntries > 0 {
		opts = append(opts, editor.WithMaxUndoEntries(cfg.MaxUndoEntries))
	}
	if cfg.ReadOnly {
		opts = append(opts, editor.WithReadOnly())
	}

	if cfg.File == "" {
		return editor.New(opts...), nil
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		if os.IsNotExist(err) {
			return editor.New(opts...), nil
		}
		return nil, fmt.Errorf("opening %s: %w", cfg.File, err)
	}
	return editor.New(append(opts, editor.WithContent(string(data)))...), nil
}

// loop runs the event loop until the user quits.
func loop(screen tcell.Screen, ed *editor.Editor) {
	cur := ed.Len()
	status := ""

	for {
		render(screen, ed, cur, status)

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			status = ""
			switch {
			case ev.Key() == tcell.KeyCtrlQ || ev.Key() == tcell.KeyEscape:
				return
			case ev.Key() == tcell.KeyCtrlZ:
				if ed.Undo() {
					if cur > ed.Len() {
						cur = ed.Len()
					}
				} else {
					status = "nothing to undo"
				}
			case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
				if n := prevRuneLen(ed.Text(), cur); n > 0 {
					if err := ed.Delete(cur-n, n); err != nil {
						status = err.Error()
					} else {
						cur -= n
					}
				}
			case ev.Key() == tcell.KeyEnter:
				if err := ed.Insert(cur, "\n"); err != nil {
					status = err.Error()
				} else {
					cur++
				}
			case ev.Key() == tcell.KeyRune:
				text := string(ev.Rune())
				if err := ed.Insert(cur, text); err != nil {
					status = err.Error()
				} else {
					cur += editor.ByteOffset(len(text))
				}
			}
		}
	}
}

// render redraws the buffer and status line.
func render(screen tcell.Screen, ed *editor.Editor, cur editor.ByteOffset, status string) {
	screen.Clear()
	width, height := screen.Size()

	lines := strings.Split(ed.Text(), "\n")
	for y, line := range lines {
		if y >= height-1 {
			break
		}
		x := 0
		for _, r := range line {
			if x >= width {
				break
			}
			screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}

	if status == "" {
		status = fmt.Sprintf("%d bytes | %d undoable | Ctrl+Z undo | Ctrl+Q quit",
			ed.Len(), ed.UndoDepth())
	}
	statusStyle := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		screen.SetContent(x, height-1, r, nil, statusStyle)
		x++
	}

	cx, cy := cursorPosition(ed.Text(), cur)
	screen.ShowCursor(cx, cy)
	screen.Show()
}

// prevRuneLen returns the byte length of the rune ending at cur, so
// backspace removes the whole rune typed, not a single byte of it.
// A malformed tail falls back to one byte.
func prevRuneLen(text string, cur editor.ByteOffset) editor.ByteOffset {
	if cur <= 0 || cur > editor.ByteOffset(len(text)) {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(text[:cur])
	return editor.ByteOffset(size)
}

// cursorPosition converts a byte offset into screen line/column.
func cursorPosition(text string, cur editor.ByteOffset) (int, int) {
	if cur > editor.ByteOffset(len(text)) {
		cur = editor.ByteOffset(len(text))
	}
	head := text[:cur]
	line := strings.Count(head, "\n")
	col := len(head)
	if i := strings.LastIndexByte(head, '\n'); i >= 0 {
		col = len(head) - i - 1
	}
	return col, line
}
