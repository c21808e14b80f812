// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

// Site holds page-wide settings that are not tied to a section.
type Site struct {
	// Owner is the copyright holder shown in the footer.
	Owner string `yaml:"owner"`
}

// ResearchInterest is one focus area listed under the bio.
type ResearchInterest struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// ProfileLinks are the optional external profile links.
// An empty field hides the matching button.
type ProfileLinks struct {
	Scholar      string `yaml:"scholar"`
	ORCID        string `yaml:"orcid"`
	ResearchGate string `yaml:"researchgate"`
	GitHub       string `yaml:"github"`
	CV           string `yaml:"cv"`
}

// Profile is the hero section's data for one locale.
type Profile struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Affiliation string `yaml:"affiliation"`
	Location    string `yaml:"location"`
	// Bio may contain <a>, <b> and <u> markup; see package richtext.
	Bio        string             `yaml:"bio"`
	Interests  []ResearchInterest `yaml:"interests"`
	Email      string             `yaml:"email"`
	Links      ProfileLinks       `yaml:"links"`
	AvatarPath string             `yaml:"avatarPath"`
}

// NewsItem is one entry of the news timeline.
type NewsItem struct {
	// Date is an ISO 8601 calendar date (YYYY-MM-DD).
	Date  string `yaml:"date"`
	Title string `yaml:"title"`
	Link  string `yaml:"link"`
}

// WorkLinks bundles the optional links of a research work.
type WorkLinks struct {
	Paper   string `yaml:"paper"`
	Code    string `yaml:"code"`
	Video   string `yaml:"video"`
	Project string `yaml:"project"`
}

// IsZero reports whether no link is set.
func (l WorkLinks) IsZero() bool {
	return l == WorkLinks{}
}

// ResearchWork is one publication.
type ResearchWork struct {
	// ID is unique across the catalog.
	ID      string `yaml:"id"`
	ImgPath string `yaml:"imgPath"`
	Title   string `yaml:"title"`
	// Authors may contain <b> and <u> markup.
	Authors  string    `yaml:"authors"`
	Venue    string    `yaml:"venue"`
	Year     int       `yaml:"year"`
	Abstract string    `yaml:"abstract"`
	Tags     []string  `yaml:"tags"`
	Links    WorkLinks `yaml:"links"`
	Bibtex   string    `yaml:"bibtex"`
	// Highlight emphasises the venue line.
	Highlight bool `yaml:"highlight"`
}

// HasTag reports whether tag is one of w's tags. Matching is exact.
func (w ResearchWork) HasTag(tag string) bool {
	for _, t := range w.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// ProjectItem is a card in the projects grid.
type ProjectItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	ImgPath     string `yaml:"imgPath"`
	Link        string `yaml:"link"`
}

// GalleryItem is one image of the gallery mosaic.
type GalleryItem struct {
	ImgPath string `yaml:"imgPath"`
	Alt     string `yaml:"alt"`
	Caption string `yaml:"caption"`
}

// AffiliationItem is one institution logo.
type AffiliationItem struct {
	Name string `yaml:"name"`
	Src  string `yaml:"src"`
	Href string `yaml:"href"`
}
