package listing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Listing is one property shown on a carousel card.
type Listing struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Community string `json:"community" yaml:"community"`
	Kind      string `json:"kind" yaml:"kind"`
	PriceAED  int64  `json:"price_aed" yaml:"price_aed"`
	Bedrooms  int    `json:"bedrooms" yaml:"bedrooms"`
	AreaSqft  int    `json:"area_sqft" yaml:"area_sqft"`
	Image     string `json:"image" yaml:"image"`
	Featured  bool   `json:"featured" yaml:"featured"`
}

// Known property kinds. Anything else renders with the neutral color.
const (
	KindApartment = "apartment"
	KindVilla     = "villa"
	KindTownhouse = "townhouse"
	KindPenthouse = "penthouse"
	KindOffPlan   = "offplan"
)

// Normalize trims and canonicalizes listings. Listings without a title are
// dropped, missing IDs are filled with random UUIDs and later duplicates of
// an ID are discarded. Input order is preserved.
func Normalize(in []Listing) []Listing {
	if len(in) == 0 {
		return nil
	}
	out := make([]Listing, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, l := range in {
		l.Title = strings.TrimSpace(l.Title)
		if l.Title == "" {
			continue
		}
		l.ID = strings.TrimSpace(l.ID)
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}

		l.Community = strings.TrimSpace(l.Community)
		l.Kind = normalizeKind(l.Kind)
		l.Image = strings.TrimSpace(l.Image)
		if l.PriceAED < 0 {
			l.PriceAED = 0
		}
		if l.Bedrooms < 0 {
			l.Bedrooms = 0
		}
		if l.AreaSqft < 0 {
			l.AreaSqft = 0
		}
		out = append(out, l)
	}
	return out
}

func normalizeKind(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	kind = strings.NewReplacer("-", "", "_", "", " ", "").Replace(kind)
	switch kind {
	case "flat", "apartments":
		return KindApartment
	case "villas":
		return KindVilla
	case "townhouses":
		return KindTownhouse
	}
	return kind
}

// FilterFeatured returns only featured listings.
func FilterFeatured(in []Listing) []Listing {
	var out []Listing
	for _, l := range in {
		if l.Featured {
			out = append(out, l)
		}
	}
	return out
}

// Equal reports whether two listing slices hold the same listings in the
// same order.
func Equal(a, b []Listing) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FormatPrice renders a price in dirhams, abbreviated to millions or
// thousands.
func FormatPrice(aed int64) string {
	switch {
	case aed <= 0:
		return "Price on request"
	case aed >= 1_000_000:
		return "AED " + trimDecimals(float64(aed)/1_000_000) + "M"
	case aed >= 1_000:
		return "AED " + trimDecimals(float64(aed)/1_000) + "K"
	default:
		return "AED " + strconv.FormatInt(aed, 10)
	}
}

func trimDecimals(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Summary returns the bedroom and area line for a card.
func (l Listing) Summary() string {
	var parts []string
	switch {
	case l.Bedrooms == 0 && l.Kind == KindApartment:
		parts = append(parts, "Studio")
	case l.Bedrooms > 0:
		parts = append(parts, fmt.Sprintf("%d BR", l.Bedrooms))
	}
	if l.AreaSqft > 0 {
		parts = append(parts, groupThousands(l.AreaSqft)+" sqft")
	}
	return strings.Join(parts, " · ")
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
