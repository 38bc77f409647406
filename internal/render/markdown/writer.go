package markdown

import (
	"io"
	"strings"
)

// Writer emits markdown primitives. None of them end the line; callers
// decide where line and block breaks go.
//
// The first failed write is kept and every later call returns it without
// touching the output, so a document is never continued after a failure.
// The per-call errors may therefore be ignored: a sequence of calls
// followed by a single Err check reports the same failure.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first write error, if any.
func (m *Writer) Err() error {
	return m.err
}

// Heading writes "# text".
func (m *Writer) Heading(text string) error {
	return m.write("# ", text)
}

// Blockquote writes "> text", quoting every line of multi-line text.
func (m *Writer) Blockquote(text string) error {
	return m.quote("> ", text)
}

// NestedBlockquote writes "> > text", a quote inside a quote.
func (m *Writer) NestedBlockquote(text string) error {
	return m.quote("> > ", text)
}

// BlockquoteBreak writes a bare ">" that keeps a blockquote open across a
// paragraph break when placed on its own line.
func (m *Writer) BlockquoteBreak() error {
	return m.write(">")
}

// Text writes text as is.
func (m *Writer) Text(text string) error {
	return m.write(text)
}

// Bold writes "**text**".
func (m *Writer) Bold(text string) error {
	return m.write("**", text, "**")
}

// Italic writes "*text*".
func (m *Writer) Italic(text string) error {
	return m.write("*", text, "*")
}

// Link writes "[title](url)".
func (m *Writer) Link(title, url string) error {
	return m.write("[", title, "](", url, ")")
}

// Line writes a horizontal rule "---".
func (m *Writer) Line() error {
	return m.write("---")
}

// LF writes a single newline.
func (m *Writer) LF() error {
	return m.write("\n")
}

// EndBlock ends the current line and leaves a blank line after it.
func (m *Writer) EndBlock() error {
	return m.write("\n\n")
}

func (m *Writer) quote(marker, text string) error {
	return m.write(marker, strings.ReplaceAll(text, "\n", "\n"+marker))
}

func (m *Writer) write(parts ...string) error {
	if m.err != nil {
		return m.err
	}
	for _, part := range parts {
		if _, err := io.WriteString(m.w, part); err != nil {
			m.err = err
			return err
		}
	}
	return nil
}
