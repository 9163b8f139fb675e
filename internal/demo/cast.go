package demo

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mailru/easyjson/jwriter"
)

// clearScreen homes the cursor and clears the terminal before each frame.
const clearScreen = "\x1b[H\x1b[2J"

// CastHeader is the first line of an asciicast v2 recording.
type CastHeader struct {
	Width  int
	Height int
	Title  string
}

// GenerateASCIICast writes frames as an asciicast v2 recording: a header line
// followed by one output event per frame and a marker event per annotation.
// Each frame is written at the sum of the delays of the frames before it.
func GenerateASCIICast(w io.Writer, frames []Frame, header CastHeader) error {
	var jw jwriter.Writer
	writeHeader(&jw, header)

	var at time.Duration
	for _, f := range frames {
		if f.Annotation != "" {
			writeEvent(&jw, at, "m", f.Annotation)
		}
		writeEvent(&jw, at, "o", clearScreen+toCRLF(f.Content))
		at += f.Delay
	}

	if jw.Error != nil {
		return fmt.Errorf("failed to encode cast: %w", jw.Error)
	}
	if _, err := jw.DumpTo(w); err != nil {
		return fmt.Errorf("failed to write cast: %w", err)
	}
	return nil
}

func writeHeader(jw *jwriter.Writer, h CastHeader) {
	jw.RawString(`{"version":2,"width":`)
	jw.Int(h.Width)
	jw.RawString(`,"height":`)
	jw.Int(h.Height)
	if h.Title != "" {
		jw.RawString(`,"title":`)
		jw.String(h.Title)
	}
	jw.RawString("}\n")
}

func writeEvent(jw *jwriter.Writer, at time.Duration, code, data string) {
	jw.RawByte('[')
	jw.Float64(at.Seconds())
	jw.RawByte(',')
	jw.String(code)
	jw.RawByte(',')
	jw.String(data)
	jw.RawString("]\n")
}

// toCRLF makes line breaks return the cursor to column zero, as a raw
// terminal expects.
func toCRLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
