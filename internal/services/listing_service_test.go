package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/models"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

func listing(title string, opts ...func(*models.Property)) *models.Property {
	p := &models.Property{
		ID:        uuid.New(),
		Title:     title,
		Location:  "Prishtinë, Kosovë",
		Price:     "€100,000",
		Beds:      2,
		Baths:     1,
		Area:      80,
		MediaType: models.MediaTypePhoto,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func createdAt(ts time.Time) func(*models.Property) {
	return func(p *models.Property) { p.CreatedAt = ts }
}

func withOrder(n int) func(*models.Property) {
	return func(p *models.Property) { p.DisplayOrder = utils.Ptr(n) }
}

/* ------------------------------------------------------------------
   Ordering
------------------------------------------------------------------ */

func TestSortForDisplayUnorderedBeforeOrdered(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ordered := listing("ordered", withOrder(2), createdAt(base.Add(48*time.Hour)))
	olderUnordered := listing("older unordered", createdAt(base))
	newerUnordered := listing("newer unordered", createdAt(base.Add(24*time.Hour)))

	got := SortForDisplay([]*models.Property{ordered, olderUnordered, newerUnordered})

	// Unordered listings come first, newest first, even though the ordered one
	// is the most recently created.
	require.Equal(t, "newer unordered", got[0].Title)
	require.Equal(t, "older unordered", got[1].Title)
	require.Equal(t, "ordered", got[2].Title)
}

func TestSortForDisplayOrderedAscending(t *testing.T) {
	a := listing("third", withOrder(30))
	b := listing("first", withOrder(1))
	c := listing("second", withOrder(5))

	got := SortForDisplay([]*models.Property{a, b, c})

	require.Equal(t, []string{"first", "second", "third"}, titles(got))
}

func TestSortForDisplayDoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	in := []*models.Property{
		listing("a", withOrder(1)),
		listing("b", createdAt(base)),
	}

	_ = SortForDisplay(in)

	require.Equal(t, "a", in[0].Title)
	require.Equal(t, "b", in[1].Title)
}

func TestSortForDisplayIdempotent(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	in := []*models.Property{
		listing("x", withOrder(7)),
		listing("y", createdAt(base.Add(time.Hour))),
		listing("z", createdAt(base)),
	}

	once := SortForDisplay(in)
	twice := SortForDisplay(once)
	require.Equal(t, titles(once), titles(twice))
}

/* ------------------------------------------------------------------
   Filtering
------------------------------------------------------------------ */

func TestApplyFiltersPriceMaxScenario(t *testing.T) {
	sale := listing("sale", func(p *models.Property) { p.Price = "€120,000" })
	rental := listing("rental", func(p *models.Property) { p.Price = "€2,500/muaj" })

	got := ApplyFilters([]*models.Property{sale, rental}, dtos.ListPropertiesQuery{PriceMax: "150000"})

	// The rental's 2,500 is numerically under the cap, but a monthly amount
	// is not a sale price; only the sale listing passes.
	require.Equal(t, []string{"sale"}, titles(got))

	got = ApplyFilters([]*models.Property{sale, rental}, dtos.ListPropertiesQuery{PriceMin: "100000"})
	require.Equal(t, []string{"sale"}, titles(got))
}

func TestApplyFiltersRecurringPriceNeverMatchesPriceBounds(t *testing.T) {
	rental := listing("rental", func(p *models.Property) {
		p.Price = "€800/muaj"
		p.ForRent = true
	})

	got := ApplyFilters([]*models.Property{rental}, dtos.ListPropertiesQuery{PriceMin: "1", PriceMax: "999999"})
	require.Empty(t, got)

	// Without price bounds the rental is reachable as usual.
	got = ApplyFilters([]*models.Property{rental}, dtos.ListPropertiesQuery{ForRent: "true"})
	require.Len(t, got, 1)
}

func TestApplyFiltersPriceBoundsInclusive(t *testing.T) {
	p := listing("exact", func(p *models.Property) { p.Price = "€150,000" })

	got := ApplyFilters([]*models.Property{p}, dtos.ListPropertiesQuery{PriceMax: "150000"})
	require.Len(t, got, 1)

	got = ApplyFilters([]*models.Property{p}, dtos.ListPropertiesQuery{PriceMin: "150000"})
	require.Len(t, got, 1)
}

func TestApplyFiltersUnextractablePriceExcluded(t *testing.T) {
	negotiable := listing("negotiable", func(p *models.Property) { p.Price = "Çmimi me marrëveshje" })

	got := ApplyFilters([]*models.Property{negotiable}, dtos.ListPropertiesQuery{PriceMax: "999999"})
	require.Empty(t, got)

	// Without a price filter the listing passes untouched.
	got = ApplyFilters([]*models.Property{negotiable}, dtos.ListPropertiesQuery{})
	require.Len(t, got, 1)
}

func TestApplyFiltersFeatureSubstring(t *testing.T) {
	villa := listing("villa", func(p *models.Property) { p.Features = []string{"Pishinë private", "Oborr"} })
	flat := listing("flat", func(p *models.Property) { p.Features = []string{"Ballkon"} })
	bare := listing("bare")

	got := ApplyFilters([]*models.Property{villa, flat, bare}, dtos.ListPropertiesQuery{Feature: "pishin"})

	// Substring, case-insensitive; listings without features never match.
	require.Equal(t, []string{"villa"}, titles(got))
}

func TestApplyFiltersQueryMatchesTitleOrLocation(t *testing.T) {
	a := listing("Penthouse me Pamje", func(p *models.Property) { p.Location = "Prishtinë" })
	b := listing("Shtëpi", func(p *models.Property) { p.Location = "Pejë, Kosovë" })

	got := ApplyFilters([]*models.Property{a, b}, dtos.ListPropertiesQuery{Query: "pejë"})
	require.Equal(t, []string{"Shtëpi"}, titles(got))

	got = ApplyFilters([]*models.Property{a, b}, dtos.ListPropertiesQuery{Query: "penthouse"})
	require.Equal(t, []string{"Penthouse me Pamje"}, titles(got))
}

func TestApplyFiltersAreAndCombined(t *testing.T) {
	match := listing("match", func(p *models.Property) {
		p.ForRent = true
		p.Area = 120
	})
	wrongArea := listing("wrong area", func(p *models.Property) {
		p.ForRent = true
		p.Area = 60
	})
	wrongRent := listing("wrong rent", func(p *models.Property) { p.Area = 120 })

	got := ApplyFilters(
		[]*models.Property{match, wrongArea, wrongRent},
		dtos.ListPropertiesQuery{ForRent: "true", AreaMin: "100"},
	)
	require.Equal(t, []string{"match"}, titles(got))
}

func TestApplyFiltersMediaTypeAndPropertyType(t *testing.T) {
	tour := listing("tour", func(p *models.Property) { p.MediaType = models.MediaType3D })
	video := listing("video", func(p *models.Property) {
		p.MediaType = models.MediaTypeVideo
		p.PropertyType = utils.Ptr("Apartament")
	})

	got := ApplyFilters([]*models.Property{tour, video}, dtos.ListPropertiesQuery{MediaType: "3d"})
	require.Equal(t, []string{"tour"}, titles(got))

	// Property-type filter is exact (case-insensitive); listings without a
	// type never match.
	got = ApplyFilters([]*models.Property{tour, video}, dtos.ListPropertiesQuery{Type: "apartament"})
	require.Equal(t, []string{"video"}, titles(got))
}

func TestApplyFiltersInvalidNumericParamIgnored(t *testing.T) {
	p := listing("kept")

	got := ApplyFilters([]*models.Property{p}, dtos.ListPropertiesQuery{PriceMax: "abc", ForRent: "maybe"})
	require.Len(t, got, 1)
}

func TestApplyFiltersResultIsSubsetAndKeepsOrder(t *testing.T) {
	props := SortForDisplay([]*models.Property{
		listing("a", createdAt(time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC))),
		listing("b", createdAt(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)), func(p *models.Property) { p.ForRent = true }),
		listing("c", createdAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))),
	})

	got := ApplyFilters(props, dtos.ListPropertiesQuery{ForRent: "false"})
	require.Equal(t, []string{"a", "c"}, titles(got))
}

func titles(props []*models.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.Title)
	}
	return out
}
