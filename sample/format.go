package sample

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// maxTokenSize bounds a single row token while parsing (1 MiB).
const maxTokenSize = 1 << 20

// WriteTo writes s in the sample file format. It implements io.WriterTo.
// A sample that fails Validate is rejected before anything is written.
func (s *Sample) WriteTo(w io.Writer) (int64, error) {
	if err := s.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", methodWriteTo, err)
	}
	bw := bufio.NewWriter(w)
	var written int64
	buf := make([]byte, 0, 64)

	emit := func(b []byte) error {
		n, err := bw.Write(b)
		written += int64(n)
		return err
	}

	buf = strconv.AppendInt(buf, int64(s.Rows), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(s.Cols), 10)
	buf = append(buf, '\n')
	if err := emit(buf); err != nil {
		return written, err
	}

	line := make([]byte, s.Cols+1)
	for _, row := range s.Grid {
		line = line[:0]
		for _, v := range row {
			line = append(line, '0'+v)
		}
		line = append(line, '\n')
		if err := emit(line); err != nil {
			return written, err
		}
	}

	buf = strconv.AppendInt(buf[:0], int64(len(s.Queries)), 10)
	buf = append(buf, '\n')
	if err := emit(buf); err != nil {
		return written, err
	}
	for _, q := range s.Queries {
		buf = buf[:0]
		for i, v := range [...]int{q.FromRow, q.FromCol, q.ToRow, q.ToCol} {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, '\n')
		if err := emit(buf); err != nil {
			return written, err
		}
	}

	return written, bw.Flush()
}

// Parse reads one sample from r and validates it.
// Tokens may be separated by any whitespace; each grid row must be a single
// token of exactly ncol binary digits. Trailing input after the last query is
// ignored.
func Parse(r io.Reader) (*Sample, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	p := parser{sc: sc}
	s := &Sample{}
	s.Rows = p.int("nrow")
	s.Cols = p.int("ncol")
	if p.err == nil && (s.Rows < 1 || s.Cols < 1) {
		return nil, fmt.Errorf("%s: grid %dx%d: %w", methodParse, s.Rows, s.Cols, ErrMalformed)
	}

	for i := 0; i < s.Rows && p.err == nil; i++ {
		tok := p.token(fmt.Sprintf("row %d", i+1))
		if p.err != nil {
			break
		}
		if len(tok) != s.Cols {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", methodParse, i+1, len(tok), s.Cols, ErrMalformed)
		}
		row := make([]uint8, s.Cols)
		for c := 0; c < len(tok); c++ {
			if tok[c] != '0' && tok[c] != '1' {
				return nil, fmt.Errorf("%s: row %d col %d: %q is not binary: %w", methodParse, i+1, c+1, tok[c], ErrMalformed)
			}
			row[c] = tok[c] - '0'
		}
		s.Grid = append(s.Grid, row)
	}

	n := p.int("query count")
	if p.err == nil && n < 0 {
		return nil, fmt.Errorf("%s: query count %d: %w", methodParse, n, ErrMalformed)
	}
	for i := 0; i < n && p.err == nil; i++ {
		label := fmt.Sprintf("query %d", i+1)
		q := Query{FromRow: p.int(label), FromCol: p.int(label), ToRow: p.int(label), ToCol: p.int(label)}
		s.Queries = append(s.Queries, q)
	}
	if p.err != nil {
		return nil, fmt.Errorf("%s: %w", methodParse, p.err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodParse, err)
	}
	return s, nil
}

// parser is a sticky-error token reader: after the first failure every call
// is a no-op returning a zero value.
type parser struct {
	sc  *bufio.Scanner
	err error
}

func (p *parser) token(what string) string {
	if p.err != nil {
		return ""
	}
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			p.err = fmt.Errorf("reading %s: %w", what, err)
		} else {
			p.err = fmt.Errorf("missing %s: %w", what, ErrMalformed)
		}
		return ""
	}
	return p.sc.Text()
}

func (p *parser) int(what string) int {
	tok := p.token(what)
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		p.err = fmt.Errorf("%s %q is not an integer: %w", what, tok, ErrMalformed)
		return 0
	}
	return v
}
