package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// RecipeRating is one user's rating of one recipe. (recipe, user email)
// identifies the record; resubmissions update it in place.
type RecipeRating struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	RecipeID    string    `json:"recipe"`
	RatingValue int       `json:"rating_value"`
	UserEmail   string    `json:"user_email"`
	UserName    *string   `json:"user_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// RatingTitle builds the display title of a new rating.
func RatingTitle(userName *string, userEmail string, value int) string {
	who := userEmail
	if userName != nil && *userName != "" {
		who = *userName
	}
	return fmt.Sprintf("%s rated %d stars", who, value)
}

// =====================================================
// RATING STATISTICS
// =====================================================

// Distribution maps each star value 1..5 to its count. Encodes as
// {"1":0,"2":0,...}.
type Distribution map[int]int

// RatingStats is derived on every read and never persisted.
type RatingStats struct {
	AverageRating      float64      `json:"averageRating"`
	TotalRatings       int          `json:"totalRatings"`
	RatingDistribution Distribution `json:"ratingDistribution"`
}

// StatsResult carries the stats plus whether they were degraded to zero
// because the store could not be read.
type StatsResult struct {
	Stats    RatingStats
	Degraded bool
	Cause    error
}

func EmptyDistribution() Distribution {
	d := make(Distribution, MaxRating)
	for v := MinRating; v <= MaxRating; v++ {
		d[v] = 0
	}
	return d
}

func EmptyStats() RatingStats {
	return RatingStats{RatingDistribution: EmptyDistribution()}
}

// ComputeStats reduces rating values. Out-of-range values count toward the
// total and the average but not the distribution. The average is rounded
// half away from zero to one decimal place.
func ComputeStats(values []int) RatingStats {
	stats := EmptyStats()
	if len(values) == 0 {
		return stats
	}

	var sum int64
	for _, v := range values {
		sum += int64(v)
		if v >= MinRating && v <= MaxRating {
			stats.RatingDistribution[v]++
		}
	}

	avg := decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(len(values)))).
		Round(1)

	stats.AverageRating = avg.InexactFloat64()
	stats.TotalRatings = len(values)
	return stats
}

// MarshalJSON keeps the five buckets in star order.
func (d Distribution) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for v := MinRating; v <= MaxRating; v++ {
		if v > MinRating {
			buf = append(buf, ',')
		}
		buf = append(buf, '"')
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, '"', ':')
		buf = strconv.AppendInt(buf, int64(d[v]), 10)
	}
	return append(buf, '}'), nil
}
