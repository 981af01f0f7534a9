package valueobjects

import (
	"math"
	"strconv"
	"strings"

	domainerrors "tokentab/contexts/dining-experience/restaurant-service/domain/errors"
)

// ratingTolerance absorbs float noise when comparing ratings.
const ratingTolerance = 0.01

// Rating is a star score on the closed interval [0, 5]. The zero
// value is the unrated state, distinct from a genuine zero score.
type Rating struct {
	value float64
	rated bool
}

func NewRating(value float64) (Rating, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Rating{}, domainerrors.ErrInvalidRating
	}
	if value < 0 || value > 5 {
		return Rating{}, domainerrors.ErrInvalidRating
	}
	return Rating{value: value, rated: true}, nil
}

func RatingFromString(raw string) (Rating, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Rating{}, domainerrors.ErrInvalidRating
	}
	return NewRating(value)
}

// Unrated is the explicit no-score-yet state.
func Unrated() Rating {
	return Rating{}
}

func (r Rating) IsRated() bool {
	return r.rated
}

func (r Rating) Value() float64 {
	return r.value
}

// Stars rounds the score to the nearest whole star for display.
func (r Rating) Stars() int {
	return int(math.Round(r.value))
}

func (r Rating) Equal(other Rating) bool {
	if r.rated != other.rated {
		return false
	}
	if !r.rated {
		return true
	}
	return math.Abs(r.value-other.value) < ratingTolerance
}
