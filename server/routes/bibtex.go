// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"io"
	"mime"
	"net/http"

	"codeberg.org/scholarpage/scholarpage/content"
	"codeberg.org/scholarpage/scholarpage/server/utils"
)

// BibtexExport serves the citation of a research work as plain text.
func BibtexExport(w http.ResponseWriter, r *http.Request) error {
	id := utils.GetPathVar(r, "id")

	work, ok := content.Current().WorkByID(id)
	if !ok || work.Bibtex == "" {
		return fmt.Errorf("%w: no citation for work %q", ErrNotFound, id)
	}

	setPublicCache(w)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": id + ".bib"}))

	_, err := io.WriteString(w, work.Bibtex)

	return err
}
