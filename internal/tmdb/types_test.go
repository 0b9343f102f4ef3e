package tmdb

import "testing"

func TestMovieYear(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"full_date", "2010-07-16", "2010"},
		{"year_only", "1999", "1999"},
		{"empty", "", "TBA"},
		{"garbage", "n/a", "TBA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Movie{ReleaseDate: tt.date}
			if got := m.Year(); got != tt.want {
				t.Errorf("Year() = %q, want %q", got, tt.want)
			}
		})
	}
}
