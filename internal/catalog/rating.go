package catalog

import (
	"math"
	"strconv"

	"shopfront/internal/domain"
)

// AverageRating formats the mean comment rating with one decimal, or "N/A"
// when there are no comments.
func AverageRating(comments []domain.Comment) string {
	if len(comments) == 0 {
		return "N/A"
	}
	var sum float64
	for _, c := range comments {
		sum += c.Rating
	}
	// halves round up, as toFixed does in the web store
	avg := math.Round(sum/float64(len(comments))*10) / 10
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// AverageValue is the numeric form of AverageRating; zero without comments
func AverageValue(comments []domain.Comment) float64 {
	s := AverageRating(comments)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
