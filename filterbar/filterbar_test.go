package filterbar

import (
	"math/rand"
	"testing"

	"eduhub/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHost records how often each setter ran so tests can check that the
// bar reports through the host instead of keeping its own copy.
type testHost struct {
	State
	items     int
	setCalls  int
	sortCalls int
	termCalls int
}

func (h *testHost) NumberOfItems() int { return h.items }

func (h *testHost) SetSelection(d Dimension, s Selection) {
	h.setCalls++
	h.State.SetSelection(d, s)
}

func (h *testHost) SetSortChoice(c SortChoice) {
	h.sortCalls++
	h.State.SetSortChoice(c)
}

func (h *testHost) SetSearchTerm(text string) {
	h.termCalls++
	h.State.SetSearchTerm(text)
}

func TestToggleParity(t *testing.T) {
	host := &testHost{}
	bar := New(host)

	rng := rand.New(rand.NewSource(7))
	counts := map[string]int{}
	for i := 0; i < 200; i++ {
		v := LanguageOptions[rng.Intn(len(LanguageOptions))]
		bar.Toggle(Language, v)
		counts[Normalize(v)]++
	}

	got := host.Selection(Language)
	for v, n := range counts {
		assert.Equal(t, n%2 == 1, got.Has(v), "value %q toggled %d times", v, n)
	}
	assert.Equal(t, 200, host.setCalls)
}

func TestDoubleToggleRestoresSet(t *testing.T) {
	host := &testHost{}
	host.State.SetSelection(Level, Selection{"expert"})
	bar := New(host)

	bar.Toggle(Level, "Beginner")
	bar.Toggle(Level, "Beginner")

	assert.Equal(t, Selection{"expert"}, host.Selection(Level))
}

func TestToggleIsCaseInsensitive(t *testing.T) {
	host := &testHost{}
	bar := New(host)

	bar.Toggle(Language, "Rust")
	assert.Equal(t, Selection{"rust"}, host.Selection(Language))

	bar.Toggle(Language, "rust")
	assert.Empty(t, host.Selection(Language))

	bar.Toggle(Language, "RUST")
	bar.Toggle(Language, "TypeScript")
	assert.Equal(t, Selection{"rust", "typescript"}, host.Selection(Language))
}

func TestToggleDoesNotMutatePreviousSet(t *testing.T) {
	host := &testHost{}
	bar := New(host)
	bar.Toggle(ContentType, "text")
	before := host.Selection(ContentType)

	bar.Toggle(ContentType, "video")
	bar.Toggle(ContentType, "text")

	assert.Equal(t, Selection{"text"}, before)
	assert.Equal(t, Selection{"video"}, host.Selection(ContentType))
}

func TestClearAllResetsEverything(t *testing.T) {
	host := &testHost{}
	bar := New(host)

	bar.Toggle(Language, "Motoko")
	bar.Toggle(Level, "Expert")
	bar.Toggle(ContentType, "video")
	bar.Toggle(ContentLanguage, "Spanish")
	bar.SetSortChoice(SortZToA)
	bar.SetSearchTerm("canister")
	bar.ToggleOpenDropdown(DropdownContentLanguage)

	bar.ClearAll()

	for _, d := range Dimensions {
		assert.Empty(t, host.Selection(d), d.String())
	}
	assert.Equal(t, SortRelevance, host.SortChoice())
	assert.Equal(t, "", host.SearchTerm())
	assert.Equal(t, DropdownNone, bar.OpenDropdown())
	assert.False(t, bar.HasActiveFilters())
}

func TestDropdownMutualExclusion(t *testing.T) {
	bar := New(&testHost{})

	bar.ToggleOpenDropdown(DropdownLanguage)
	assert.Equal(t, DropdownLanguage, bar.OpenDropdown())

	bar.ToggleOpenDropdown(DropdownLevel)
	assert.Equal(t, DropdownLevel, bar.OpenDropdown())
	snap := bar.Snapshot()
	assert.False(t, snap.IsOpen(Language))
	assert.True(t, snap.IsOpen(Level))

	bar.ToggleOpenDropdown(DropdownLevel)
	assert.Equal(t, DropdownNone, bar.OpenDropdown())
}

func TestAtMostOneDropdownOpenUnderRandomInput(t *testing.T) {
	bar := New(&testHost{})
	all := []Dropdown{DropdownNone, DropdownLanguage, DropdownLevel, DropdownContentType, DropdownContentLanguage}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		bar.ToggleOpenDropdown(all[rng.Intn(len(all))])
		open := 0
		snap := bar.Snapshot()
		for _, d := range Dimensions {
			if snap.IsOpen(d) {
				open++
			}
		}
		require.LessOrEqual(t, open, 1)
	}
}

func TestSetSortChoiceClosesDropdown(t *testing.T) {
	host := &testHost{}
	bar := New(host)
	bar.ToggleOpenDropdown(DropdownContentType)

	bar.SetSortChoice(SortAToZ)

	assert.Equal(t, SortAToZ, host.SortChoice())
	assert.Equal(t, DropdownNone, bar.OpenDropdown())
	assert.Equal(t, 1, host.sortCalls)
}

func TestSearchTermStoredVerbatim(t *testing.T) {
	host := &testHost{}
	bar := New(host)

	bar.SetSearchTerm("intro")
	assert.Equal(t, "intro", host.SearchTerm())

	bar.SetSearchTerm("  Intro To Motoko ")
	assert.Equal(t, "  Intro To Motoko ", host.SearchTerm())
	assert.Equal(t, 2, host.termCalls)
}

func TestClearVisibility(t *testing.T) {
	host := &testHost{}
	bar := New(host)
	assert.False(t, bar.Snapshot().ClearVisible())

	bar.Toggle(Language, "Motoko")
	assert.Equal(t, Selection{"motoko"}, host.Selection(Language))
	bar.Toggle(Level, "Beginner")
	assert.Equal(t, Selection{"beginner"}, host.Selection(Level))
	assert.True(t, bar.Snapshot().ClearVisible())

	bar.ClearAll()
	assert.Empty(t, host.Selection(Language))
	assert.Empty(t, host.Selection(Level))
	assert.False(t, bar.Snapshot().ClearVisible())

	bar.SetSearchTerm(" ")
	assert.True(t, bar.Snapshot().ClearVisible(), "a non-empty search term counts even when blank")
}

func TestOutsideClickClosesDropdown(t *testing.T) {
	bus := events.NewBus()
	bar := New(&testHost{})
	require.NoError(t, bar.Mount(bus, "select-boxes"))
	defer bar.Unmount()

	bar.ToggleOpenDropdown(DropdownLanguage)
	bus.PublishClick(events.Click{Path: []string{"course-list", "app"}})

	assert.Equal(t, DropdownNone, bar.OpenDropdown())
}

func TestInsideClickIsIgnored(t *testing.T) {
	bus := events.NewBus()
	bar := New(&testHost{})
	require.NoError(t, bar.Mount(bus, "select-boxes"))
	defer bar.Unmount()

	// Trigger click: the toggle runs first, then the click reaches the listener.
	bar.ToggleOpenDropdown(DropdownLevel)
	bus.PublishClick(events.Click{Path: []string{"dropdown-trigger-level", "select-boxes", "app"}})
	assert.Equal(t, DropdownLevel, bar.OpenDropdown())

	// A click on the container itself is inside too.
	bus.PublishClick(events.Click{Path: []string{"select-boxes", "app"}})
	assert.Equal(t, DropdownLevel, bar.OpenDropdown())
}

func TestClickBeforeMountIsNoop(t *testing.T) {
	bar := New(&testHost{})
	bar.ToggleOpenDropdown(DropdownLanguage)

	bar.handleClick(events.Click{Path: []string{"elsewhere"}})

	assert.Equal(t, DropdownLanguage, bar.OpenDropdown())
}

func TestMountLifecycle(t *testing.T) {
	bus := events.NewBus()
	bar := New(&testHost{})

	require.NoError(t, bar.Mount(bus, "select-boxes"))
	assert.True(t, bar.Mounted())
	assert.Equal(t, 1, bus.Listeners())

	err := bar.Mount(bus, "select-boxes")
	assert.ErrorIs(t, err, ErrAlreadyMounted)
	assert.Equal(t, 1, bus.Listeners(), "a rejected mount must not add a listener")

	bar.Unmount()
	bar.Unmount()
	assert.False(t, bar.Mounted())
	assert.Equal(t, 0, bus.Listeners())

	// Remount after unmount acquires exactly one listener again.
	require.NoError(t, bar.Mount(bus, "select-boxes"))
	assert.Equal(t, 1, bus.Listeners())
	bar.Unmount()
}

func TestMobilePanel(t *testing.T) {
	host := &testHost{}
	bar := New(host)

	bar.ShowMobilePanel()
	assert.True(t, bar.Snapshot().MobileOpen)
	bar.HideMobilePanel()
	assert.False(t, bar.MobilePanelVisible())

	bar.ShowMobilePanel()
	bar.Toggle(ContentLanguage, "Turkish")
	assert.Equal(t, ResultsAnchor, bar.ApplyMobileFilters())
	assert.False(t, bar.MobilePanelVisible())
	assert.Equal(t, Selection{"turkish"}, host.Selection(ContentLanguage))

	bar.ShowMobilePanel()
	assert.Equal(t, ResultsAnchor, bar.ClearMobileFilters())
	assert.False(t, bar.MobilePanelVisible())
	assert.Empty(t, host.Selection(ContentLanguage))
}

func TestSnapshotIsACopy(t *testing.T) {
	host := &testHost{items: 12}
	bar := New(host)
	bar.Toggle(Language, "Rust")

	snap := bar.Snapshot()
	bar.Toggle(Language, "Motoko")

	assert.Equal(t, 12, snap.NumberOfItems)
	assert.Equal(t, Selection{"rust"}, snap.Selected(Language))
	assert.True(t, snap.Checked(Language, "Rust"))
	assert.False(t, snap.Checked(Language, "Motoko"))
	assert.True(t, snap.Active(Language))
	assert.False(t, snap.Active(Level))
}
