package workoutlog_test

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/2beens/trainingadventure/internal/training"
	"github.com/2beens/trainingadventure/internal/training/lift"
	"github.com/2beens/trainingadventure/internal/training/workoutlog"
)

var fakeExercises = []string{"Barbell Bench Press", "Romanian Deadlift", "Arnold Press", "Hammer Curl"}

func fakeEntries(faker *gofakeit.Faker, n int, date time.Time) []workoutlog.Entry {
	exercise := fakeExercises[faker.Number(0, len(fakeExercises)-1)]
	entries := make([]workoutlog.Entry, 0, n)
	for i := 0; i < n; i++ {
		reps := faker.Number(1, 15)
		weight := float64(faker.Number(4, 80)) * 2.5
		entries = append(entries, workoutlog.Entry{
			Date:      training.FormatDate(date),
			Week:      training.ISOWeek(date),
			DayName:   "Push A",
			Exercise:  exercise,
			SetNumber: i + 1,
			Reps:      reps,
			Weight:    weight,
			RIR:       float64(faker.Number(0, 4)),
			Tempo:     "3-0-1",
			Notes:     faker.Sentence(4),
			Est1RM:    lift.Round2(lift.EstimatedOneRepMax(float64(reps), weight)),
			Volume:    lift.Volume(float64(reps), weight),
			XP:        12,
		})
	}
	return entries
}
