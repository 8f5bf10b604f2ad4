package workout

import "fmt"

// Record is the immutable summary of one completed training session.
type Record struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Message renders the fixed report line for the session.
func (r Record) Message() string {
	return fmt.Sprintf(messageTemplate,
		r.TrainingType, r.Duration, r.Distance, r.Speed, r.Calories)
}

func newRecord(t Training) Record {
	return Record{
		TrainingType: t.Name(),
		Duration:     t.durationHours(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.Calories(),
	}
}
