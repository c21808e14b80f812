// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"errors"
	"io/fs"
	"net/http"
)

var errNoAssets = errors.New("embedded assets were not assigned")

// filesOnly hides directories from http.FileServer, so there are no listings
// and no slash-appending redirects that would fight NormalizeURL.
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()

		return nil, err
	}

	if info.IsDir() {
		_ = file.Close()

		return nil, fs.ErrNotExist
	}

	return file, nil
}
