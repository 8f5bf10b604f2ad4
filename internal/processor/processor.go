// Package processor runs sensor packages through the workout calculators and
// writes report lines for them.
package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/MendeIT/oop-fitness-tracker/internal/sensor"
	"github.com/MendeIT/oop-fitness-tracker/internal/workout"
)

const unknownTrainingMessage = "Данный тип тренировки неизвестен. " +
	"Попробуйте походить, поплавать или бег."

// Option configures optional behaviour for the Processor.
type Option func(*Processor)

// WithLogger overrides the logger used to report skipped entries.
func WithLogger(logger *log.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// Processor dispatches sensor packages through the workout factory and
// renders one report line per entry to the configured writer.
type Processor struct {
	out    io.Writer
	logger *log.Logger
}

// New constructs a Processor writing report lines to out.
func New(out io.Writer, opts ...Option) *Processor {
	p := &Processor{
		out:    out,
		logger: log.New(log.Writer(), "[processor] ", log.LstdFlags|log.Lshortfile),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes packages in input order. Unknown type codes produce the fixed
// warning line and processing continues; malformed packages abort the batch
// with the construction error, after lines for earlier entries were written.
func (p *Processor) Run(ctx context.Context, packages []sensor.Package) error {
	for i, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return err
		}

		training, err := workout.New(pkg.Type, pkg.Data)
		if errors.Is(err, workout.ErrUnknownTraining) {
			p.logger.Printf("skipping entry %d: unknown training type %q", i, pkg.Type)
			recordUnknown(pkg.Type)
			if err := p.writeLine(unknownTrainingMessage); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			recordFailure(pkg.Type)
			return fmt.Errorf("entry %d (%s): %w", i, pkg.Type, err)
		}

		rec := training.Summary()
		if err := p.writeLine(rec.Message()); err != nil {
			return err
		}
		recordProcessed(rec.TrainingType)
	}
	return nil
}

func (p *Processor) writeLine(line string) error {
	if _, err := fmt.Fprintln(p.out, line); err != nil {
		return fmt.Errorf("write report line: %w", err)
	}
	return nil
}
