// Package seed loads reproducible demo fixtures: a handful of appointments
// around the current date and a few weeks of synthetic IoT samples.
// Intended for development databases and UI demos, not production.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const day = 24 * time.Hour

// Config controls the volume and shape of generated fixture data.
type Config struct {
	HeartRateCount int
	StepDays       int
	SleepDays      int
	// BaseTime anchors the IoT sample series.
	BaseTime time.Time
	// Seed makes the generated values reproducible.
	Seed int64
}

// DefaultConfig returns the standard demo fixture volume.
func DefaultConfig() Config {
	return Config{
		HeartRateCount: 50,
		StepDays:       14,
		SleepDays:      14,
		BaseTime:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Seed:           1,
	}
}

type fixtureAppointment struct {
	patientName string
	doctorName  string
	specialty   string
	date        int64
	status      string
	notes       string
}

func sampleAppointments(now time.Time) []fixtureAppointment {
	return []fixtureAppointment{
		{
			patientName: "Sarah Johnson",
			doctorName:  "Dr. Michael Chen",
			specialty:   "cardiology",
			date:        now.Add(3 * day).UnixMilli(),
			status:      "scheduled",
			notes:       "Follow-up for hypertension management",
		},
		{
			patientName: "Robert Martinez",
			doctorName:  "Dr. Emily Rodriguez",
			specialty:   "dermatology",
			date:        now.Add(7 * day).UnixMilli(),
			status:      "scheduled",
			notes:       "Annual skin screening",
		},
		{
			patientName: "Jennifer Wu",
			doctorName:  "Dr. David Thompson",
			specialty:   "general practice",
			date:        now.Add(-5 * day).UnixMilli(),
			status:      "completed",
			notes:       "Routine check-up, all vitals normal",
		},
		{
			patientName: "Carlos Gonzalez",
			doctorName:  "Dr. Michael Chen",
			specialty:   "cardiology",
			date:        now.Add(-12 * day).UnixMilli(),
			status:      "completed",
			notes:       "Stress test results reviewed",
		},
		{
			patientName: "Emily Parker",
			doctorName:  "Dr. Lisa Anderson",
			specialty:   "orthopedics",
			date:        now.Add(-2 * day).UnixMilli(),
			status:      "canceled",
			notes:       "Patient requested reschedule",
		},
	}
}

// Run inserts the fixture set. It does not truncate existing rows; running
// it twice simply adds a second batch.
func Run(ctx context.Context, pool *pgxpool.Pool, cfg Config, logger zerolog.Logger) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	now := time.Now()

	appointments := sampleAppointments(now)
	for _, a := range appointments {
		_, err := pool.Exec(ctx, `
			INSERT INTO appointments (patient_name, doctor_name, specialty, date, status, notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`,
			a.patientName, a.doctorName, a.specialty, a.date, a.status, a.notes)
		if err != nil {
			return fmt.Errorf("seed appointment for %s: %w", a.patientName, err)
		}
	}
	logger.Info().Int("count", len(appointments)).Msg("seeded appointments")

	samples := 0
	insert := func(metric string, value float64, recordedAt int64) error {
		_, err := pool.Exec(ctx, `
			INSERT INTO iot_metrics (metric, value, recorded_at, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())`,
			metric, value, recordedAt)
		if err != nil {
			return fmt.Errorf("seed %s sample: %w", metric, err)
		}
		samples++
		return nil
	}

	// Heart rate every 5 hours, resting range 60-90 bpm.
	for i := 0; i < cfg.HeartRateCount; i++ {
		at := cfg.BaseTime.Add(time.Duration(i) * 5 * time.Hour).UnixMilli()
		if err := insert("heart_rate", float64(60+rng.Intn(31)), at); err != nil {
			return err
		}
	}
	// Daily step counts, 3000-12000.
	for i := 0; i < cfg.StepDays; i++ {
		at := cfg.BaseTime.Add(time.Duration(i) * day).UnixMilli()
		if err := insert("steps", float64(3000+rng.Intn(9001)), at); err != nil {
			return err
		}
	}
	// Nightly sleep duration, 4.5-9 hours.
	for i := 0; i < cfg.SleepDays; i++ {
		at := cfg.BaseTime.Add(time.Duration(i) * day).UnixMilli()
		if err := insert("sleep_hours", 4.5+rng.Float64()*4.5, at); err != nil {
			return err
		}
	}
	logger.Info().Int("count", samples).Msg("seeded iot metrics")

	return nil
}
