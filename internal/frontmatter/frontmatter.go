package frontmatter

import (
	"bytes"
	"errors"
)

// Style captures the formatting details needed to rewrite a document without
// touching its frontmatter block.
//
// OpenDelimiter and CloseDelimiter hold the exact delimiter lines (including
// any trailing blanks and the newline) so Join can reproduce them verbatim.
type Style struct {
	Newline            string
	HasTrailingNewline bool
	OpenDelimiter      string
	CloseDelimiter     string
}

// ErrMissingClosingDelimiter indicates the document started with a frontmatter
// delimiter but did not contain a closing delimiter line.
var ErrMissingClosingDelimiter = errors.New("frontmatter start delimiter found but closing delimiter is missing")

// Split separates a `---` delimited frontmatter block from the MDX body.
//
// Delimiter lines may carry trailing spaces or tabs. If the document does not
// start with a delimiter line, had is false and body is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, style Style, err error) {
	style = detectStyle(content)

	openEnd, ok := delimiterLine(content, 0)
	if !ok {
		return nil, content, false, style, nil
	}
	style.OpenDelimiter = string(content[:openEnd])

	for pos := openEnd; pos < len(content); {
		if closeEnd, isClose := delimiterLine(content, pos); isClose {
			style.CloseDelimiter = string(content[pos:closeEnd])
			return content[openEnd:pos], content[closeEnd:], true, style, nil
		}
		nl := bytes.IndexByte(content[pos:], '\n')
		if nl < 0 {
			break
		}
		pos += nl + 1
	}

	return nil, nil, false, style, ErrMissingClosingDelimiter
}

// Join reassembles a document from raw frontmatter and body.
//
// If had is false, Join returns body as-is. Delimiters captured by Split are
// reused; otherwise plain `---` lines in the detected newline style are emitted.
func Join(frontmatter []byte, body []byte, had bool, style Style) []byte {
	if !had {
		return body
	}

	nl := style.Newline
	if nl == "" {
		nl = "\n"
	}
	open := style.OpenDelimiter
	if open == "" {
		open = "---" + nl
	}
	closing := style.CloseDelimiter
	if closing == "" {
		closing = "---" + nl
	}

	out := make([]byte, 0, len(open)+len(frontmatter)+len(closing)+len(body))
	out = append(out, open...)
	out = append(out, frontmatter...)
	out = append(out, closing...)
	out = append(out, body...)
	return out
}

// delimiterLine reports whether a `---` delimiter line starts at pos and
// returns the offset just past its newline.
func delimiterLine(content []byte, pos int) (int, bool) {
	if !bytes.HasPrefix(content[pos:], []byte("---")) {
		return 0, false
	}
	i := pos + 3
	for i < len(content) && (content[i] == ' ' || content[i] == '\t' || content[i] == '\r') {
		i++
	}
	if i >= len(content) || content[i] != '\n' {
		return 0, false
	}
	return i + 1, true
}

func detectStyle(content []byte) Style {
	newline := "\n"
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			newline = "\r\n"
			break
		}
		if content[i] == '\n' {
			break
		}
	}

	return Style{
		Newline:            newline,
		HasTrailingNewline: len(content) > 0 && content[len(content)-1] == '\n',
	}
}
