// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/dataframe/column"
	"cogentcore.org/dataframe/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advertising(t *testing.T) *Table {
	dt, err := ReadSource(&FSSource{FS: os.DirFS("testdata"), Filename: "advertising.csv"})
	require.NoError(t, err)
	return dt
}

func smallTable(t *testing.T) *Table {
	a, err := column.FromValues(scalar.Int16, "a", scalar.NewInt16(1), scalar.NewInt16(2), scalar.NewInt16(3))
	require.NoError(t, err)
	b, err := column.FromValues(scalar.String, "b", scalar.NewString("x"), scalar.NewString("y"), scalar.NewString("z"))
	require.NoError(t, err)
	dt, err := FromColumns(a, b)
	require.NoError(t, err)
	return dt
}

func TestReadSource(t *testing.T) {
	dt := advertising(t)
	rows, cols := dt.Shape()
	assert.Equal(t, 12, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, []string{"TV", "Radio", "Newspaper", "Sales"}, dt.ColumnNames())
	for ci := range cols {
		assert.Equal(t, scalar.Float32, dt.Column(ci).Kind())
		assert.Equal(t, rows, dt.Column(ci).Len())
	}
	assert.True(t, dt.Column(0).At(0).Equal(scalar.NewFloat32(230.1)))
	assert.True(t, dt.Column(3).At(11).Equal(scalar.NewFloat32(17.4)))
	assert.Equal(t, "advertising.csv", dt.Meta.Name())
	assert.Equal(t, "advertising.csv", dt.Meta.Filename())
}

func TestReadKinds(t *testing.T) {
	dt := OpenCSV(filepath.Join("testdata", "people.csv"))
	rows, cols := dt.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 6, cols)
	assert.Equal(t, []string{"Name", "Age", "Height", "Member", "Grade", "Joined"}, dt.ColumnNames())
	assert.Equal(t, []scalar.Kind{scalar.String, scalar.Int16, scalar.Float32, scalar.Bool, scalar.Char, scalar.Date}, dt.kinds())
	assert.True(t, dt.Column(1).At(2).IsNull())
	b, ok := dt.Column(3).At(1).Bool()
	assert.True(t, ok)
	assert.False(t, b)
	assert.Equal(t, "Cleo", dt.Column(0).At(2).String())
	assert.Equal(t, "2022-01-15", dt.Column(5).At(2).String())
}

func TestReadEdgeCases(t *testing.T) {
	dt, err := ReadSource(StringSource(""))
	require.NoError(t, err)
	r, c := dt.Shape()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)

	dt, err = ReadSource(StringSource("a,b\n"))
	require.NoError(t, err)
	r, c = dt.Shape()
	assert.Equal(t, 0, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, scalar.String, dt.Column(1).Kind())

	dt, err = ReadSource(StringSource("\ufeffx,,z\r\n1,2,3\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "col_1", "z"}, dt.ColumnNames())
	assert.Equal(t, 1, dt.NumRows())

	_, err = ReadSource(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestReadErrors(t *testing.T) {
	_, err := ReadSource(StringSource("a,b\n1,2\nx,3\n"))
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "line 3")

	_, err = ReadSource(StringSource("a,b\n1\n"))
	assert.ErrorIs(t, err, ErrUnparseableSchema)

	_, err = ReadSource(StringSource("a,b\n1,2\n3\n"))
	assert.ErrorIs(t, err, ErrMalformedRow)

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	_, err = ReadSource(BytesSource(png))
	assert.ErrorIs(t, err, ErrMalformedSource)

	_, err = ReadSource(FileSource(filepath.Join("testdata", "missing.csv")))
	assert.ErrorIs(t, err, ErrMalformedSource)

	_, err = ReadSource(&changingSource{texts: []string{"a\n1\n2\n", "a\n1\n"}})
	assert.ErrorIs(t, err, ErrMalformedSource)

	_, err = ReadSource(&changingSource{texts: []string{"a\n1\n", "a\n1\n2\n"}})
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestReadSignatureHeaders(t *testing.T) {
	for _, txt := range []string{
		"BMI,Age\n22.5,30\n",
		"ID3,val\n1,2\n",
		"MZ,val\n1,2\n",
		"%PDF,val\n1,2\n",
	} {
		dt, err := ReadSource(StringSource(txt))
		require.NoError(t, err, txt)
		r, c := dt.Shape()
		assert.Equal(t, 1, r, txt)
		assert.Equal(t, 2, c, txt)
	}
	dt, err := ReadSource(StringSource("BMI,Age\n22.5,30\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"BMI", "Age"}, dt.ColumnNames())
	assert.True(t, dt.Column(0).At(0).Equal(scalar.NewFloat32(22.5)))

	// a multi-byte rune split at the end of the examined prefix is still text
	long := strings.Repeat("x", sniffLen-1) + "é,b\n1,2\n"
	dt, err = ReadSource(StringSource(long))
	require.NoError(t, err)
	assert.Equal(t, 2, dt.NumColumns())

	_, err = ReadSource(BytesSource([]byte("a,b\n1,\x002\n")))
	assert.ErrorIs(t, err, ErrMalformedSource)
	_, err = ReadSource(BytesSource([]byte("a,b\n\xff\xfe,2\n")))
	assert.ErrorIs(t, err, ErrMalformedSource)
}

// changingSource returns each of its texts in turn on Open.
type changingSource struct {
	texts []string
	opens int
}

func (cs *changingSource) Open() (io.ReadCloser, error) {
	txt := cs.texts[min(cs.opens, len(cs.texts)-1)]
	cs.opens++
	return io.NopCloser(strings.NewReader(txt)), nil
}

func (cs *changingSource) Name() string { return "changing" }

func TestFromSourceDegrades(t *testing.T) {
	dt := FromSource(StringSource("a,b\n1\n"))
	require.NotNil(t, dt)
	r, c := dt.Shape()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)

	dt = OpenFS(fstest.MapFS{}, "none.csv")
	assert.Equal(t, 0, dt.NumColumns())
}

func TestFromColumns(t *testing.T) {
	dt := smallTable(t)
	r, c := dt.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)

	short, err := column.FromValues(scalar.Bool, "c", scalar.NewBool(true))
	require.NoError(t, err)
	_, err = FromColumns(dt.Column(0), short)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = FromColumns(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	empty, err := FromColumns()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumColumns())
}

func TestColumnIndex(t *testing.T) {
	dt := advertising(t)
	idx, err := dt.ColumnIndex("Sales")
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	_, err = dt.ColumnIndex("sale")
	assert.ErrorIs(t, err, ErrUnknownColumn)
	assert.Contains(t, err.Error(), `did you mean "Sales"?`)

	_, err = dt.ColumnByName("Profit")
	assert.ErrorIs(t, err, ErrUnknownColumn)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestClone(t *testing.T) {
	dt := advertising(t)
	dt.SetSeed(7)
	cp := dt.Clone()
	assert.Equal(t, dt.String(), cp.String())
	seed, ok := cp.Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(7), seed)

	cp.Meta.SetName("copy")
	cp.ClearSeed()
	assert.Equal(t, "advertising.csv", dt.Meta.Name())
	_, ok = dt.Seed()
	assert.True(t, ok)
	assert.NotSame(t, dt.Column(0), cp.Column(0))
}

func TestWriteCSV(t *testing.T) {
	dt := OpenCSV(filepath.Join("testdata", "people.csv"))
	var first bytes.Buffer
	require.NoError(t, dt.WriteCSV(&first))
	assert.True(t, strings.HasPrefix(first.String(), "Name,Age,Height,Member,Grade,Joined\nAna,31,1.68,true,A,2021-03-04\n"))
	assert.Contains(t, first.String(), "Cleo,,1.75,true,A,2022-01-15\n")

	rt, err := ReadSource(BytesSource(first.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, dt.kinds(), rt.kinds())
	var second bytes.Buffer
	require.NoError(t, rt.WriteCSV(&second))
	assert.Equal(t, first.String(), second.String())

	fn := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, dt.SaveCSV(fn))
	saved := OpenCSV(fn)
	assert.Equal(t, dt.String(), saved.String())
}
