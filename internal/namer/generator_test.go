package namer

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		artist string
		title  string
		ext    string
		want   string
		wantOK bool
	}{
		{
			name:   "Artist And Title",
			artist: "Daft Punk",
			title:  "One More Time",
			ext:    ".mp3",
			want:   "DAFT PUNK - ONE MORE TIME.mp3",
			wantOK: true,
		},
		{
			name:   "Title Only",
			artist: "",
			title:  "track remix",
			ext:    ".FLAC",
			want:   "TRACK REMIX.flac",
			wantOK: true,
		},
		{
			name:   "No Title Fails",
			artist: "",
			title:  "",
			ext:    ".mp3",
			wantOK: false,
		},
		{
			name:   "Artist Without Title Fails",
			artist: "Daft Punk",
			title:  "",
			ext:    ".mp3",
			wantOK: false,
		},
		{
			name:   "Illegal Characters Dropped",
			artist: "AC/DC",
			title:  "T.N.T?",
			ext:    ".Mp3",
			want:   "ACDC - T.N.T.mp3",
			wantOK: true,
		},
		{
			name:   "All Illegal Characters",
			artist: `a<b>c:d"e`,
			title:  `f/g\h|i?j*k`,
			ext:    ".ogg",
			want:   "ABCDE - FGHIJK.ogg",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Generate(tt.artist, tt.title, tt.ext)
			if ok != tt.wantOK {
				t.Fatalf("Generate(%q, %q, %q) ok = %v; want %v",
					tt.artist, tt.title, tt.ext, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Generate(%q, %q, %q) = %q; want %q",
					tt.artist, tt.title, tt.ext, got, tt.want)
			}
		})
	}
}

func TestGenerate_NeverEmitsIllegalCharacters(t *testing.T) {
	inputs := [][2]string{
		{`<>:"/\|?*`, "title"},
		{"artist", `t<i|t?l*e`},
		{`a/b`, `c\d`},
	}
	for _, in := range inputs {
		got, ok := Generate(in[0], in[1], ".mp3")
		if !ok {
			continue
		}
		if strings.ContainsAny(got, `<>:"/\|?*`) {
			t.Errorf("Generate(%q, %q) = %q contains illegal characters", in[0], in[1], got)
		}
	}
}
