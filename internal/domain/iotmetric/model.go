package iotmetric

import (
	"strings"
	"time"

	"github.com/healthtrack/healthtrack/internal/platform/httperr"
	"github.com/healthtrack/healthtrack/pkg/jsonval"
)

// Metric identifies which health signal a sample belongs to.
type Metric string

const (
	MetricHeartRate  Metric = "heart_rate"
	MetricSteps      Metric = "steps"
	MetricSleepHours Metric = "sleep_hours"
)

// ParseMetric decodes a wire string into a Metric. It is the single decode
// step shared by body validation and the list filter.
func ParseMetric(s string) (Metric, bool) {
	switch Metric(s) {
	case MetricHeartRate, MetricSteps, MetricSleepHours:
		return Metric(s), true
	}
	return "", false
}

// Sample maps to the iot_metrics table. RecordedAt is the sample time in
// epoch milliseconds, distinct from the row's created_at.
type Sample struct {
	ID         int64     `json:"id"`
	Metric     Metric    `json:"metric"`
	Value      float64   `json:"value"`
	RecordedAt int64     `json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Point is one sample in a list response window.
type Point struct {
	RecordedAt int64   `json:"recorded_at"`
	Value      float64 `json:"value"`
}

// CreateInput is the untrusted create request body.
type CreateInput struct {
	Metric     jsonval.String  `json:"metric"`
	Value      jsonval.Float64 `json:"value"`
	RecordedAt jsonval.Int64   `json:"recorded_at"`
}

// NewSample holds the validated, normalized fields of a create request.
type NewSample struct {
	Metric     Metric
	Value      float64
	RecordedAt int64
}

// Validate normalizes the create body. Required-field presence is checked
// before per-field parsing; values must be non-negative.
func (in CreateInput) Validate() (*NewSample, *httperr.Error) {
	rawMetric := ""
	if in.Metric.Set() && !in.Metric.Null() {
		rawMetric = strings.TrimSpace(in.Metric.Value())
	}

	if rawMetric == "" || !in.Value.Set() || !in.RecordedAt.Set() {
		return nil, httperr.BadRequest(httperr.CodeMissingRequiredFields,
			"Missing required fields: metric, value, recorded_at")
	}

	m, ok := ParseMetric(rawMetric)
	if !ok {
		return nil, httperr.BadRequest(httperr.CodeInvalidMetric,
			"Metric must be one of: heart_rate, steps, sleep_hours")
	}
	if !in.Value.Valid() {
		return nil, httperr.BadRequest(httperr.CodeInvalidValue,
			"Value is required and must be a valid number")
	}
	if in.Value.Value() < 0 {
		return nil, httperr.BadRequest(httperr.CodeInvalidValueRange,
			"Value must be a positive number")
	}
	if !in.RecordedAt.Valid() {
		return nil, httperr.BadRequest(httperr.CodeInvalidTimestamp,
			"recorded_at is required and must be a valid unix timestamp in milliseconds")
	}

	return &NewSample{
		Metric:     m,
		Value:      in.Value.Value(),
		RecordedAt: in.RecordedAt.Value(),
	}, nil
}

// Filter restricts a list query. From and To are inclusive bounds on
// recorded_at.
type Filter struct {
	Metric *Metric
	From   *int64
	To     *int64
}
