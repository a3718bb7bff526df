// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import "cogentcore.org/dataframe/base/errors"

// SetName sets the "Name" standard key.
func (md *Data) SetName(name string) {
	md.Set("Name", name)
}

// Name returns the "Name" standard key value (empty if not set).
func (md *Data) Name() string {
	return errors.Ignore1(Get[string](*md, "Name"))
}

// SetDoc sets the "Doc" standard key.
func (md *Data) SetDoc(doc string) {
	md.Set("Doc", doc)
}

// Doc returns the "Doc" standard key value (empty if not set).
func (md *Data) Doc() string {
	return errors.Ignore1(Get[string](*md, "Doc"))
}

// SetFilename sets the "Filename" standard key.
func (md *Data) SetFilename(file string) {
	md.Set("Filename", file)
}

// Filename returns the "Filename" standard key value (empty if not set).
func (md *Data) Filename() string {
	return errors.Ignore1(Get[string](*md, "Filename"))
}
