package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
		{"", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Nightfox", got)
	}
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
}

func TestKindColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		styles := th.Styles()

		if got := styles.KindColor(" Villa "); got != th.KindColors["villa"] {
			t.Fatalf("%s: KindColor(villa) = %q, want %q", name, got, th.KindColors["villa"])
		}
		if got := styles.KindColor("office"); got != th.Muted {
			t.Fatalf("%s: KindColor(office) = %q, want muted %q", name, got, th.Muted)
		}
		for _, kind := range []string{"apartment", "villa", "townhouse", "penthouse", "offplan"} {
			if th.KindColors[kind] == "" {
				t.Fatalf("%s: missing color for %s", name, kind)
			}
		}
	}
}

func TestWithBackgroundKeepsKindColors(t *testing.T) {
	th := GetTheme("Slate")
	styles := th.Styles().WithBackground(th.SurfaceAlt)
	if got := styles.KindColor("penthouse"); got != th.KindColors["penthouse"] {
		t.Fatalf("KindColor after WithBackground = %q, want %q", got, th.KindColors["penthouse"])
	}
	if got := styles.KindColor("unknown"); got != th.Muted {
		t.Fatalf("fallback after WithBackground = %q, want %q", got, th.Muted)
	}
}
