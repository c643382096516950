// Package progress turns the workout log into per-exercise time series and
// best-set rankings.
package progress

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/trainingadventure/internal/training"
	"github.com/2beens/trainingadventure/internal/training/workoutlog"
)

var ErrUnknownMetric = errors.New("unknown metric")

type Metric string

const (
	MetricWeight Metric = "weight"
	MetricReps   Metric = "reps"
	MetricVolume Metric = "volume"
	MetricEst1RM Metric = "est_1rm"
	MetricRIR    Metric = "rir"
)

const (
	DefaultBestSetsWindowDays = 90
	BestSetsLimit             = 10
)

func Metrics() []Metric {
	return []Metric{MetricWeight, MetricReps, MetricVolume, MetricEst1RM, MetricRIR}
}

func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

func (m Metric) value(e workoutlog.Entry) float64 {
	switch m {
	case MetricWeight:
		return e.Weight
	case MetricReps:
		return float64(e.Reps)
	case MetricVolume:
		return e.Volume
	case MetricEst1RM:
		return e.Est1RM
	case MetricRIR:
		return e.RIR
	}
	return 0
}

type dayAgg struct {
	sum   float64
	max   float64
	count int
}

// TimeSeries groups the exercise's sets by calendar date and aggregates the
// metric per day: volume is summed, est_1rm takes the max and the rest are
// averaged. Points are in chronological order. Entries with an unreadable
// date are skipped.
func TimeSeries(entries []workoutlog.Entry, exercise string, metric Metric) ([]Point, error) {
	if _, err := ParseMetric(string(metric)); err != nil {
		return nil, err
	}

	days := make(map[time.Time]*dayAgg)
	for _, e := range entries {
		if e.Exercise != exercise {
			continue
		}
		day, err := training.ParseDate(e.Date)
		if err != nil {
			continue
		}

		v := metric.value(e)
		agg, ok := days[day]
		if !ok {
			days[day] = &dayAgg{sum: v, max: v, count: 1}
			continue
		}
		agg.sum += v
		agg.count++
		if v > agg.max {
			agg.max = v
		}
	}

	dates := make([]time.Time, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	points := make([]Point, 0, len(dates))
	for _, d := range dates {
		agg := days[d]
		var v float64
		switch metric {
		case MetricVolume:
			v = agg.sum
		case MetricEst1RM:
			v = agg.max
		default:
			v = agg.sum / float64(agg.count)
		}
		points = append(points, Point{
			Date:  training.FormatDate(d),
			Value: v,
		})
	}

	return points, nil
}

// BestSets returns up to ten sets of the exercise logged within the last
// withinDays calendar days (inclusive), ranked by est-1RM then volume, both
// descending. Equal sets keep their log order.
func BestSets(entries []workoutlog.Entry, exercise string, withinDays int, now time.Time) []workoutlog.Entry {
	cutoff := training.Day(now).AddDate(0, 0, -withinDays)

	recent := make([]workoutlog.Entry, 0)
	for _, e := range entries {
		if e.Exercise != exercise {
			continue
		}
		day, err := training.ParseDate(e.Date)
		if err != nil || day.Before(cutoff) {
			continue
		}
		recent = append(recent, e)
	}

	sort.SliceStable(recent, func(i, j int) bool {
		if recent[i].Est1RM != recent[j].Est1RM {
			return recent[i].Est1RM > recent[j].Est1RM
		}
		return recent[i].Volume > recent[j].Volume
	})

	if len(recent) > BestSetsLimit {
		recent = recent[:BestSetsLimit]
	}

	return recent
}

// Exercises lists the distinct exercise names found in the log, sorted.
func Exercises(entries []workoutlog.Entry) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, e := range entries {
		if e.Exercise == "" {
			continue
		}
		if _, ok := seen[e.Exercise]; ok {
			continue
		}
		seen[e.Exercise] = struct{}{}
		names = append(names, e.Exercise)
	}
	sort.Strings(names)
	return names
}
