// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/scholarpage/scholarpage/i18n"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

var (
	errEmptyWorkID     = errors.New("research work has an empty id")
	errDuplicateWorkID = errors.New("duplicate research work id")
	errWorkWithoutTags = errors.New("research work has no tags")
	errInvalidNewsDate = errors.New("news item date is not YYYY-MM-DD")
)

// Catalog is the complete, read-only content of the page.
type Catalog struct {
	Site         Site              `yaml:"site"`
	Profile      Profile           `yaml:"profile"`
	ProfileZh    *Profile          `yaml:"profileZh"`
	News         []NewsItem        `yaml:"news"`
	Works        []ResearchWork    `yaml:"works"`
	Projects     []ProjectItem     `yaml:"projects"`
	Gallery      []GalleryItem     `yaml:"gallery"`
	Affiliations []AffiliationItem `yaml:"affiliations"`
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks the invariants the page relies on.
//
// Every problem is reported; the returned error joins them.
// An empty catalog is valid.
func (c *Catalog) Validate() error {
	var errs []error

	seen := make(map[string]struct{}, len(c.Works))

	for i, w := range c.Works {
		if w.ID == "" {
			errs = append(errs, fmt.Errorf("works[%d]: %w", i, errEmptyWorkID))
		} else if _, dup := seen[w.ID]; dup {
			errs = append(errs, fmt.Errorf("works[%d]: %w: %q", i, errDuplicateWorkID, w.ID))
		}

		seen[w.ID] = struct{}{}

		if len(w.Tags) == 0 {
			errs = append(errs, fmt.Errorf("works[%d] (%s): %w", i, w.ID, errWorkWithoutTags))
		}
	}

	for i, n := range c.News {
		if _, err := time.Parse(time.DateOnly, n.Date); err != nil {
			errs = append(errs, fmt.Errorf("news[%d]: %w: %q", i, errInvalidNewsDate, n.Date))
		}
	}

	return errors.Join(errs...)
}

// ProfileFor returns the profile shown for locale.
// Chinese falls back to the English profile when no Chinese variant exists.
func (c *Catalog) ProfileFor(locale i18n.Locale) Profile {
	if locale == i18n.Chinese && c.ProfileZh != nil {
		return *c.ProfileZh
	}

	return c.Profile
}

// WorkByID returns the research work with the given id.
func (c *Catalog) WorkByID(id string) (ResearchWork, bool) {
	for _, w := range c.Works {
		if w.ID == id {
			return w, true
		}
	}

	return ResearchWork{}, false
}

var current atomic.Pointer[Catalog]

// Setup loads the catalog served by the site.
//
// An empty path selects the built-in catalog; otherwise the YAML file at path
// replaces it entirely.
func Setup(path string) error {
	data := embeddedCatalog
	source := "embedded"

	if path != "" {
		b, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
		if err != nil {
			return fmt.Errorf("failed to read catalog %s: %w", path, err)
		}

		data, source = b, path
	}

	c, err := Parse(data)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", source, err)
	}

	current.Store(c)

	log.Info().
		Str("source", source).
		Int("works", len(c.Works)).
		Int("news", len(c.News)).
		Int("projects", len(c.Projects)).
		Int("gallery", len(c.Gallery)).
		Msg("Loaded content catalog")

	return nil
}

// Current returns the catalog installed by [Setup].
// Before Setup has succeeded it returns an empty catalog.
func Current() *Catalog {
	if c := current.Load(); c != nil {
		return c
	}

	return &Catalog{}
}
