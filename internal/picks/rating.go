package picks

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	maxStars  = 5
	starFull  = "★"
	starEmpty = "☆"

	// Review counts are grouped the way en-GB readers expect: 12,418.
	reviewsLocale = "en-GB"
)

// pendingRating is shown until both rating and review count are usable.
const pendingRating = `<div class="pick-rating pick-rating--pending">Rating pending</div>`

// BuildRatingLine renders the rating line for a product.
func BuildRatingLine(p Product) string {
	line, ok := ratingText(p)
	if !ok {
		return pendingRating
	}
	return `<div class="pick-rating" aria-label="Rating">` + escapeHTML(line) + `</div>`
}

// ratingText returns "★★★★☆ 4.6 (12,418 reviews)", or false when either
// value is unusable.
func ratingText(p Product) (string, bool) {
	if !usable(p.Rating) || !usable(p.Reviews) {
		return "", false
	}
	line := starString(p.Rating) + " " + formatRating(p.Rating) + " (" + formatReviews(p.Reviews) + " reviews)"
	return line, true
}

// starString renders floor(rating) filled stars out of five.
func starString(rating float64) string {
	full := int(math.Floor(math.Max(0, math.Min(maxStars, rating))))
	return strings.Repeat(starFull, full) + strings.Repeat(starEmpty, maxStars-full)
}

// formatRating rounds to one decimal and drops trailing zeros (4.60 -> 4.6).
func formatRating(rating float64) string {
	rounded := math.Round(rating*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// formatReviews groups thousands with up to three fraction digits.
func formatReviews(n float64) string {
	p := message.NewPrinter(language.MustParse(reviewsLocale))
	return p.Sprint(number.Decimal(n, number.MaxFractionDigits(3)))
}
