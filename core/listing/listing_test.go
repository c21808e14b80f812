// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/scholarpage/scholarpage/content"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		n, p, size   int
		wantTotal    int
		wantCurrent  int
		wantItems    []int
		wantControls bool
	}{
		{name: "empty list has one page", n: 0, p: 0, size: 10, wantTotal: 1, wantCurrent: 0, wantItems: []int{}},
		{name: "seven works fit on one page", n: 7, p: 0, size: ResearchPageSize, wantTotal: 1, wantItems: seq(7)},
		{name: "four gallery items fit on one page", n: 4, p: 0, size: GalleryPageSize, wantTotal: 1, wantItems: seq(4)},
		{name: "exact multiple", n: 12, p: 1, size: ProjectsPageSize, wantTotal: 2, wantCurrent: 1, wantItems: []int{6, 7, 8, 9, 10, 11}, wantControls: true},
		{name: "partial last page", n: 11, p: 1, size: 10, wantTotal: 2, wantCurrent: 1, wantItems: []int{10}, wantControls: true},
		{name: "index past the end clamps to last page", n: 11, p: 5, size: 10, wantTotal: 2, wantCurrent: 1, wantItems: []int{10}, wantControls: true},
		{name: "negative index clamps to first page", n: 11, p: -3, size: 10, wantTotal: 2, wantCurrent: 0, wantItems: seq(10), wantControls: true},
		{name: "size below one", n: 2, p: 1, size: 0, wantTotal: 2, wantCurrent: 1, wantItems: []int{1}, wantControls: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := Paginate(seq(tt.n), tt.p, tt.size)

			assert.Equal(t, tt.wantTotal, page.TotalPages)
			assert.Equal(t, tt.wantCurrent, page.Current)
			assert.Equal(t, tt.wantItems, page.Items)
			assert.Equal(t, tt.wantControls, page.ShowControls())
		})
	}
}

func TestPaginatePageLengths(t *testing.T) {
	t.Parallel()

	for _, size := range []int{ResearchPageSize, ProjectsPageSize, GalleryPageSize} {
		for n := 0; n <= 3*size+1; n++ {
			items := seq(n)
			first := Paginate(items, 0, size)

			wantTotal := max(1, (n+size-1)/size)
			require.Equal(t, wantTotal, first.TotalPages, "n=%d size=%d", n, size)

			covered := 0

			for p := range first.TotalPages {
				page := Paginate(items, p, size)
				if p < first.TotalPages-1 {
					assert.Len(t, page.Items, size, "n=%d size=%d p=%d", n, size, p)
				} else {
					assert.Len(t, page.Items, n-(first.TotalPages-1)*size, "n=%d size=%d last page", n, size)
				}

				covered += len(page.Items)
			}

			assert.Equal(t, n, covered)
		}
	}
}

func TestPageNavigation(t *testing.T) {
	t.Parallel()

	first := Paginate(seq(25), 0, 10)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())
	assert.Equal(t, 0, first.Prev(), "previous on the first page is a no-op")
	assert.Equal(t, 1, first.Next())

	last := Paginate(seq(25), 2, 10)
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())
	assert.Equal(t, 2, last.Next(), "next on the last page is a no-op")
	assert.Equal(t, 1, last.Prev())
}

var works = []content.ResearchWork{
	{ID: "a", Tags: []string{"Animation"}},
	{ID: "b", Tags: []string{"GarmentSimulation"}},
	{ID: "c", Tags: []string{"Colorization", "Animation"}},
	{ID: "d", Tags: []string{"Colorization"}},
	{ID: "e", Tags: []string{"LaneDetection"}},
}

func ids(ws []content.ResearchWork) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.ID)
	}

	return out
}

func TestFilterWorks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter TagFilter
		want   []string
	}{
		{name: "all keeps everything in order", filter: AllTags, want: []string{"a", "b", "c", "d", "e"}},
		{name: "tag on one work", filter: ByTag("LaneDetection"), want: []string{"e"}},
		{name: "order preserved", filter: ByTag("Animation"), want: []string{"a", "c"}},
		{name: "unknown tag", filter: ByTag("Robotics"), want: []string{}},
		{name: "matching is exact", filter: ByTag("animation"), want: []string{}},
		{name: "empty tag means all", filter: ByTag(""), want: []string{"a", "b", "c", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ids(FilterWorks(works, tt.filter)))
		})
	}
}

func TestBuildTags(t *testing.T) {
	t.Parallel()

	got := BuildTags(works)
	require.NotEmpty(t, got)
	assert.True(t, got[0].IsAll())

	names := make([]string, 0, len(got)-1)
	for _, f := range got[1:] {
		names = append(names, f.Tag())
	}

	assert.Equal(t, []string{"Animation", "GarmentSimulation", "Colorization", "LaneDetection"}, names)

	assert.Equal(t, []TagFilter{AllTags}, BuildTags(nil), "all is present for an empty catalog")
}

func TestSelectionFromQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  Selection
	}{
		{name: "defaults", query: "", want: Selection{}},
		{
			name:  "one-based indices",
			query: "research=2&projects=3&gallery=4",
			want:  Selection{Research: 1, Projects: 2, Gallery: 3},
		},
		{
			name:  "malformed indices select first page",
			query: "research=x&projects=-1&gallery=0",
			want:  Selection{},
		},
		{
			name:  "research page kept under same tag",
			query: "tag=Animation&from=Animation&research=2",
			want:  Selection{Tag: ByTag("Animation"), Research: 1},
		},
		{
			name:  "changing the tag resets the research page",
			query: "tag=Colorization&from=Animation&research=2&gallery=2",
			want:  Selection{Tag: ByTag("Colorization"), Gallery: 1},
		},
		{
			name:  "tag without origin resets the research page",
			query: "tag=Colorization&research=3",
			want:  Selection{Tag: ByTag("Colorization")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, SelectionFromQuery(q))
		})
	}
}

func TestSelectionURLRoundTrip(t *testing.T) {
	t.Parallel()

	s := Selection{Tag: ByTag("Colorization"), Research: 1, Gallery: 2}

	u, err := url.Parse(s.URL("research"))
	require.NoError(t, err)
	assert.Equal(t, "/", u.Path)
	assert.Equal(t, "research", u.Fragment)
	assert.Equal(t, s, SelectionFromQuery(u.Query()))

	assert.Equal(t, "/#news", Selection{}.URL("news"))
}

func TestSelectionWithTagResetsResearch(t *testing.T) {
	t.Parallel()

	s := Selection{Tag: ByTag("Animation"), Research: 3, Projects: 1}.WithTag(ByTag("Colorization"))

	assert.Equal(t, Selection{Tag: ByTag("Colorization"), Projects: 1}, s)
	assert.Equal(t, 2, s.WithGallery(2).Gallery)
	assert.Equal(t, 1, s.WithResearch(1).Research)
	assert.Equal(t, 0, s.WithProjects(0).Projects)
}
