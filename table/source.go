// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides Table, an ordered set of typed columns of
// equal length that is read from comma-delimited text with the kind
// of each column inferred from the data, and operations to select,
// slice and partition it into new Tables.
package table

import (
	"bytes"
	"io"
	"io/fs"
	"strings"

	"cogentcore.org/dataframe/base/fsx"
)

// Source is a source of delimited text lines. Reading a Table
// takes two passes over the source, each of which opens it and
// closes it again when done.
type Source interface {
	// Open opens the source for reading from the start.
	Open() (io.ReadCloser, error)

	// Name returns a name for the source, used in messages and metadata.
	Name() string
}

// FileSource is a [Source] for a file on the operating system filesystem.
// A leading ~ in the path is expanded to the home directory.
type FileSource string

func (fl FileSource) Open() (io.ReadCloser, error) {
	fsys, fname, err := fsx.DirFS(string(fl))
	if err != nil {
		return nil, err
	}
	return fsys.Open(fname)
}

func (fl FileSource) Name() string { return string(fl) }

// FSSource is a [Source] for a file in an [fs.FS] filesystem,
// such as an embed.FS or fstest.MapFS.
type FSSource struct {
	FS       fs.FS
	Filename string
}

func (fsrc *FSSource) Open() (io.ReadCloser, error) {
	return fsrc.FS.Open(fsrc.Filename)
}

func (fsrc *FSSource) Name() string { return fsrc.Filename }

// StringSource is a [Source] for text held in a string.
type StringSource string

func (ss StringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(ss))), nil
}

func (ss StringSource) Name() string { return "string" }

// BytesSource is a [Source] for text held in a byte slice.
type BytesSource []byte

func (bs BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(bs)), nil
}

func (bs BytesSource) Name() string { return "bytes" }
