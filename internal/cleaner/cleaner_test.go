package cleaner

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Promo Hash Tags",
			in:   "DJ Snake - Turn Down #FREE DL# [Official]",
			want: "DJ Snake - Turn Down",
		},
		{
			name: "Bracketed Annotation",
			in:   "Song [Free Download]",
			want: "Song",
		},
		{
			name: "Free Parenthetical",
			in:   "Tune (free dl)",
			want: "Tune",
		},
		{
			name: "Download Parenthetical",
			in:   "Tune (Download Now)",
			want: "Tune",
		},
		{
			name: "Premiere Parenthetical",
			in:   "Tune (PREMIERE)",
			want: "Tune",
		},
		{
			name: "Original Mix",
			in:   "Tune (Original Mix)",
			want: "Tune",
		},
		{
			name: "Extended Mix With Noise",
			in:   "track_12345_remix_(Extended Mix)",
			want: "track remix",
		},
		{
			name: "Radio Edit",
			in:   "Tune (Radio Edit)",
			want: "Tune",
		},
		{
			name: "Club Mix",
			in:   "Tune (club mix)",
			want: "Tune",
		},
		{
			name: "Generic Mix Catch-All",
			in:   "Tune (Some Weird Mix)",
			want: "Tune",
		},
		{
			name: "Bootleg",
			in:   "Tune (Bootleg)",
			want: "Tune",
		},
		{
			name: "Version",
			in:   "Tune (Acoustic Version)",
			want: "Tune",
		},
		{
			name: "Mix Inside Word Is Still Stripped",
			in:   "Tune (Mixed Emotions)",
			want: "Tune",
		},
		{
			name: "Five Digit Run Removed",
			in:   "12345678 Song",
			want: "Song",
		},
		{
			name: "Four Digits Kept",
			in:   "1234 Song",
			want: "1234 Song",
		},
		{
			name: "Underscore Runs",
			in:   "My___Song",
			want: "My Song",
		},
		{
			name: "Hyphen Padding Normalized",
			in:   "Artist-Title",
			want: "Artist - Title",
		},
		{
			name: "Uneven Hyphen Padding",
			in:   "Artist   -Title",
			want: "Artist - Title",
		},
		{
			name: "Trailing Orphan Hyphen",
			in:   "Artist - ",
			want: "Artist",
		},
		{
			name: "Leading Hash Tag",
			in:   "#PREMIERE# Artist - Song",
			want: "Artist - Song",
		},
		{
			name: "Everything Removed",
			in:   "#tag# [note] 99999",
			want: "",
		},
		{
			name: "Already Clean",
			in:   "Artist - Song",
			want: "Artist - Song",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.in)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Cleaning must be a projection: a second pass never finds anything left
// to remove.
func TestClean_Projection(t *testing.T) {
	inputs := []string{
		"DJ Snake - Turn Down #FREE DL# [Official]",
		"track_12345_remix_(Extended Mix)",
		"Artist-Title",
		"Tune (Original Mix) (free dl) [x] 123456",
		"  spaced   out  - ",
		"",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

// The rule order is load-bearing: specific phrases must be consumed
// before the generic catch-alls run.
func TestClean_RuleOrder(t *testing.T) {
	// "(Original Mix)" is removed by the specific rule; if the generic
	// "mix" rule ran first it would also match, so both orders strip the
	// span, but with two parentheticals only ordered rules leave the
	// right remainder.
	got := Clean("Tune (Original Mix) (Live Version)")
	if got != "Tune" {
		t.Errorf("Clean() = %q; want %q", got, "Tune")
	}
}
