package listing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	in := []Listing{
		{ID: " a ", Title: "  Marina Gate ", Kind: " Apartments ", Community: " Dubai Marina "},
		{ID: "b", Title: "   "},
		{ID: "a", Title: "Duplicate"},
		{Title: "No ID", Kind: "Off-Plan", PriceAED: -5, Bedrooms: -1, AreaSqft: -2},
	}
	out := Normalize(in)
	require.Len(t, out, 2)

	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "Marina Gate", out[0].Title)
	assert.Equal(t, KindApartment, out[0].Kind)
	assert.Equal(t, "Dubai Marina", out[0].Community)

	_, err := uuid.Parse(out[1].ID)
	assert.NoError(t, err, "missing IDs are filled with UUIDs")
	assert.Equal(t, KindOffPlan, out[1].Kind)
	assert.Zero(t, out[1].PriceAED)
	assert.Zero(t, out[1].Bedrooms)
	assert.Zero(t, out[1].AreaSqft)

	assert.Nil(t, Normalize(nil))
}

func TestNormalize_KeepsOrderAndCleanInput(t *testing.T) {
	in := []Listing{
		{ID: "c", Title: "Peninsula Four", Kind: KindApartment, PriceAED: 1_950_000, Bedrooms: 2, AreaSqft: 1120},
		{ID: "a", Title: "Sidra Villas III", Kind: KindVilla, PriceAED: 6_800_000, Bedrooms: 4, AreaSqft: 4500, Featured: true},
		{ID: "b", Title: "Reem Townhouse", Kind: KindTownhouse},
	}
	want := make([]Listing, len(in))
	copy(want, in)

	got := Normalize(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Normalize changed clean input (-want +got):\n%s", diff)
	}

	got[0].Title = "mutated"
	assert.Equal(t, "Peninsula Four", in[0].Title, "Normalize must not alias its input")
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Price on request"},
		{-1, "Price on request"},
		{950, "AED 950"},
		{850_000, "AED 850K"},
		{1_480_000, "AED 1.48M"},
		{2_450_000, "AED 2.45M"},
		{32_500_000, "AED 32.5M"},
		{5_000_000, "AED 5M"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPrice(tc.in), "FormatPrice(%d)", tc.in)
	}
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "3 BR · 1,960 sqft", Listing{Bedrooms: 3, AreaSqft: 1960}.Summary())
	assert.Equal(t, "Studio · 410 sqft", Listing{Kind: KindApartment, AreaSqft: 410}.Summary())
	assert.Equal(t, "5 BR · 12,400 sqft", Listing{Bedrooms: 5, AreaSqft: 12400}.Summary())
	assert.Equal(t, "1,234,567 sqft", Listing{AreaSqft: 1234567}.Summary())
	assert.Empty(t, Listing{}.Summary())
}

func TestFilterFeaturedAndEqual(t *testing.T) {
	all := []Listing{{ID: "a", Featured: true}, {ID: "b"}, {ID: "c", Featured: true}}
	featured := FilterFeatured(all)
	require.Len(t, featured, 2)
	assert.True(t, Equal(featured, []Listing{{ID: "a", Featured: true}, {ID: "c", Featured: true}}))
	assert.False(t, Equal(featured, all))
	assert.True(t, Equal(nil, []Listing{}))
}

func TestParseAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listings:
  - id: x1
    title: Sidra Villas
    kind: villa
    price_aed: 7850000
    bedrooms: 4
  - title: ""
`), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "x1", got[0].ID)
	assert.Equal(t, int64(7_850_000), got[0].PriceAED)

	_, err = Parse([]byte("listings: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSampleCatalog(t *testing.T) {
	sample := Sample()
	require.Len(t, sample, 10)
	for _, l := range sample {
		assert.NotEmpty(t, l.ID)
		assert.NotEmpty(t, l.Title)
	}
	assert.Len(t, FilterFeatured(sample), 7)
}
