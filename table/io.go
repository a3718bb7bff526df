// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"cogentcore.org/dataframe/base/errors"
	"cogentcore.org/dataframe/column"
	"cogentcore.org/dataframe/scalar"
	"github.com/h2non/filetype"
)

// Delim is the field delimiter. Fields are split on every
// delimiter: quoted fields and embedded delimiters or newlines
// are not supported.
const Delim = ","

// sniffLen is the number of leading bytes examined to reject
// binary (non-text) sources.
const sniffLen = 262

// maxLineSize is the longest line that can be read.
const maxLineSize = 16 * 1024 * 1024

// OpenCSV reads a table from the given comma-separated-values (CSV) file,
// as in [FromSource]. Any error is logged, and results in an empty table.
func OpenCSV(filename string) *Table {
	return FromSource(FileSource(filename))
}

// OpenFS is the version of [OpenCSV] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string) *Table {
	return FromSource(&FSSource{FS: fsys, Filename: filename})
}

// FromSource reads a table from the given source as in [ReadSource].
// If the source can not be read, the error is logged and an empty
// table with zero rows and columns is returned, which is usable
// but has nothing in it.
func FromSource(src Source) *Table {
	dt, err := ReadSource(src)
	if err != nil {
		errors.Log(fmt.Errorf("table.FromSource: %w", err))
		return New()
	}
	return dt
}

// ReadSource reads a table from the given source of comma-separated
// lines, the first of which has the column names. Blank lines are
// skipped, and spaces around each field are trimmed.
//
// The source is read twice: the first pass counts the columns in the
// header and the data rows after it. The second pass infers the kind
// of each column from its field in the first data row (see [scalar.Infer]),
// makes each column with capacity for all rows, and fills them.
// A field in a later row that can not be converted to the kind of its
// column is an error wrapping [ErrTypeMismatch].
//
// An empty source results in an empty table without error, and a
// source with only a header results in [scalar.String] columns
// with no rows.
func ReadSource(src Source) (*Table, error) {
	if src == nil {
		return nil, fmt.Errorf("table.ReadSource: %w: nil source", ErrInvalidArgument)
	}
	rows, cols, err := scanDimensions(src)
	if err != nil {
		return nil, fmt.Errorf("table.ReadSource: %s: %w", src.Name(), err)
	}
	slog.Debug("table.ReadSource: scanned dimensions", "source", src.Name(), "rows", rows, "columns", cols)
	dt := New(src.Name())
	if _, ok := src.(FileSource); ok {
		dt.Meta.SetFilename(src.Name())
	} else if fsrc, ok := src.(*FSSource); ok {
		dt.Meta.SetFilename(fsrc.Filename)
	}
	if cols == 0 {
		return dt, nil
	}
	dt.columns, err = readColumns(src, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("table.ReadSource: %s: %w", src.Name(), err)
	}
	dt.rows = rows
	slog.Debug("table.ReadSource: filled columns", "source", src.Name(), "kinds", dt.kinds())
	return dt, nil
}

func (dt *Table) kinds() []scalar.Kind {
	ks := make([]scalar.Kind, len(dt.columns))
	for i, cl := range dt.columns {
		ks[i] = cl.Kind()
	}
	return ks
}

// lineReader returns the non-blank lines of a source.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func openLines(src Source) (*lineReader, io.Closer, error) {
	r, err := src.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedSource, err)
	}
	br := bufio.NewReader(r)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		r.Close()
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedSource, err)
	}
	if !isText(head, len(head) == sniffLen) {
		r.Close()
		what := "binary"
		if kind, _ := filetype.Match(head); kind != filetype.Unknown {
			what = kind.MIME.Value
		}
		return nil, nil, fmt.Errorf("%w: %s data is not delimited text", ErrMalformedSource, what)
	}
	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineReader{sc: sc}, r, nil
}

// isText returns whether head looks like the start of UTF-8 text:
// valid UTF-8 with no NUL bytes. If truncated, head may end partway
// through a rune.
func isText(head []byte, truncated bool) bool {
	if bytes.IndexByte(head, 0) >= 0 {
		return false
	}
	if truncated {
		for i := 1; i <= utf8.UTFMax && i <= len(head); i++ {
			if utf8.RuneStart(head[len(head)-i]) {
				if !utf8.FullRune(head[len(head)-i:]) {
					head = head[:len(head)-i]
				}
				break
			}
		}
	}
	return utf8.Valid(head)
}

// next returns the next non-blank line, and false at the end.
func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.line++
		ln := strings.TrimRight(lr.sc.Text(), "\r")
		if lr.line == 1 {
			ln = strings.TrimPrefix(ln, "\ufeff")
		}
		if strings.TrimSpace(ln) == "" {
			continue
		}
		return ln, true
	}
	return "", false
}

func (lr *lineReader) err() error {
	if err := lr.sc.Err(); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrMalformedSource, lr.line, err)
	}
	return nil
}

// splitFields splits a line into its trimmed fields.
func splitFields(line string) []string {
	fs := strings.Split(line, Delim)
	for i, f := range fs {
		fs[i] = strings.TrimSpace(f)
	}
	return fs
}

// scanDimensions is the first pass over a source, returning the number
// of data rows and the number of header columns.
func scanDimensions(src Source) (rows, cols int, err error) {
	lr, cl, err := openLines(src)
	if err != nil {
		return 0, 0, err
	}
	defer cl.Close()
	hdr, ok := lr.next()
	if !ok {
		return 0, 0, lr.err()
	}
	cols = len(splitFields(hdr))
	for {
		if _, ok := lr.next(); !ok {
			break
		}
		rows++
	}
	return rows, cols, lr.err()
}

// headerNames returns the column names from the header fields,
// naming any unnamed column by its position.
func headerNames(hdrs []string) []string {
	for ci, hd := range hdrs {
		if hd == "" {
			hdrs[ci] = fmt.Sprintf("col_%d", ci)
		}
	}
	return hdrs
}

// readColumns is the second pass over a source, making and filling
// the columns for the given dimensions found by [scanDimensions].
func readColumns(src Source, rows, cols int) ([]*column.Column, error) {
	lr, cl, err := openLines(src)
	if err != nil {
		return nil, err
	}
	defer cl.Close()
	changed := fmt.Errorf("%w: source changed between passes", ErrMalformedSource)
	hdr, ok := lr.next()
	if !ok {
		return nil, errors.Join(changed, lr.err())
	}
	names := headerNames(splitFields(hdr))
	if len(names) != cols {
		return nil, changed
	}

	bs := make([]*column.Builder, cols)
	if rows == 0 {
		for ci, nm := range names {
			bs[ci] = errors.Must1(column.New(scalar.String, 0, nm))
		}
		return finish(bs), nil
	}

	first, ok := lr.next()
	if !ok {
		return nil, errors.Join(changed, lr.err())
	}
	rec := splitFields(first)
	if len(rec) != cols {
		return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrUnparseableSchema, lr.line, len(rec), cols)
	}
	for ci, str := range rec {
		bs[ci], err = column.New(scalar.Infer(str), rows, names[ci])
		if err != nil {
			return nil, err
		}
	}
	for {
		if err := appendRow(bs, rec, lr.line); err != nil {
			return nil, err
		}
		ln, ok := lr.next()
		if !ok {
			break
		}
		rec = splitFields(ln)
		if len(rec) != cols {
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrMalformedRow, lr.line, len(rec), cols)
		}
	}
	if err := lr.err(); err != nil {
		return nil, err
	}
	if bs[0].Len() != rows {
		return nil, changed
	}
	return finish(bs), nil
}

// appendRow appends the fields of one row to the column builders.
func appendRow(bs []*column.Builder, rec []string, line int) error {
	for ci, str := range rec {
		if err := bs[ci].AppendString(str); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return nil
}

func finish(bs []*column.Builder) []*column.Column {
	cols := make([]*column.Column, len(bs))
	for i, b := range bs {
		cols[i] = b.Finish()
	}
	return cols
}

// SaveCSV writes the table to the given comma-separated-values (CSV) file,
// as in [Table.WriteCSV].
func (dt *Table) SaveCSV(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw)
	if err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCSV writes the table as comma-separated lines, starting with
// a header line of column names, in the form read by [ReadSource].
// Null values are written as empty fields.
func (dt *Table) WriteCSV(w io.Writer) error {
	if len(dt.columns) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, strings.Join(dt.ColumnNames(), Delim)+"\n"); err != nil {
		return err
	}
	rec := make([]string, len(dt.columns))
	for ri := range dt.rows {
		for ci, cl := range dt.columns {
			rec[ci] = cl.At(ri).Token()
		}
		if _, err := io.WriteString(w, strings.Join(rec, Delim)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
