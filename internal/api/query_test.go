package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryString(t *testing.T) {
	tests := []struct {
		name  string
		pairs []pair
		want  string
	}{
		{
			name:  "all present keeps insertion order",
			pairs: []pair{{"city", "Almaty"}, {"subject", "math"}, {"sortBy", "rating"}},
			want:  "?city=Almaty&subject=math&sortBy=rating",
		},
		{
			name:  "empty values dropped",
			pairs: []pair{{"city", ""}, {"subject", "math"}, {"minRating", ""}},
			want:  "?subject=math",
		},
		{
			name:  "all empty yields no question mark",
			pairs: []pair{{"city", ""}, {"subject", ""}},
			want:  "",
		},
		{
			name:  "no pairs",
			pairs: nil,
			want:  "",
		},
		{
			name:  "values are url encoded",
			pairs: []pair{{"subject", "computer science"}, {"sortBy", "price_asc"}},
			want:  "?subject=computer+science&sortBy=price_asc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queryString(tt.pairs))
		})
	}
}
