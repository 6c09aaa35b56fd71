package textgrid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type writer struct {
	w   *bufio.Writer
	err error
}

func (w *writer) printf(indent int, format string, args ...any) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(strings.Repeat("    ", indent)); err != nil {
		w.err = err
		return
	}
	_, w.err = fmt.Fprintf(w.w, format+"\n", args...)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Write writes tg in the long text format.
func (tg *TextGrid) Write(w io.Writer) error {
	out := &writer{w: bufio.NewWriter(w)}
	out.printf(0, `File type = "ooTextFile"`)
	out.printf(0, `Object class = "TextGrid"`)
	out.printf(0, "")
	out.printf(0, "xmin = %s", num(tg.XMin))
	out.printf(0, "xmax = %s", num(tg.XMax))
	if len(tg.Tiers) == 0 {
		out.printf(0, "tiers? <absent>")
		return out.flush()
	}
	out.printf(0, "tiers? <exists>")
	out.printf(0, "size = %d", len(tg.Tiers))
	out.printf(0, "item []:")
	for i, t := range tg.Tiers {
		out.printf(1, "item [%d]:", i+1)
		out.printf(2, "class = %s", quote(t.Class))
		out.printf(2, "name = %s", quote(t.Name))
		out.printf(2, "xmin = %s", num(t.XMin))
		out.printf(2, "xmax = %s", num(t.XMax))
		if t.Class == TextTier {
			out.printf(2, "points: size = %d", len(t.Points))
			for j, p := range t.Points {
				out.printf(2, "points [%d]:", j+1)
				out.printf(3, "number = %s", num(p.Time))
				out.printf(3, "mark = %s", quote(p.Mark))
			}
			continue
		}
		out.printf(2, "intervals: size = %d", len(t.Intervals))
		for j, iv := range t.Intervals {
			out.printf(2, "intervals [%d]:", j+1)
			out.printf(3, "xmin = %s", num(iv.XMin))
			out.printf(3, "xmax = %s", num(iv.XMax))
			out.printf(3, "text = %s", quote(iv.Text))
		}
	}
	return out.flush()
}

func (w *writer) flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// WriteFile writes tg to path in the long text format.
func (tg *TextGrid) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tg.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
