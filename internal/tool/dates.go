package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DayOfWeekTool resolves a calendar date to its weekday.
type DayOfWeekTool struct{}

func NewDayOfWeekTool() *DayOfWeekTool {
	return &DayOfWeekTool{}
}

func (t *DayOfWeekTool) Name() string { return "get_day_of_week" }
func (t *DayOfWeekTool) Description() string {
	return "Calculate the exact day of the week for any date. LLMs cannot accurately compute this for arbitrary dates."
}

func (t *DayOfWeekTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"year": {
				"type": "integer",
				"description": "Year, e.g. 2000"
			},
			"month": {
				"type": "integer",
				"description": "Month (1-12)"
			},
			"day": {
				"type": "integer",
				"description": "Day of month"
			}
		},
		"required": ["year", "month", "day"]
	}`)
}

func (t *DayOfWeekTool) Execute(_ context.Context, args json.RawMessage) (*Result, error) {
	var params struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Day   int `json:"day"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Errorf("invalid arguments: %v", err), nil
	}

	// time.Date normalizes out-of-range components (Feb 30 becomes Mar 2),
	// so a round-trip mismatch means the input was not a real calendar date.
	d := time.Date(params.Year, time.Month(params.Month), params.Day, 0, 0, 0, 0, time.UTC)
	if d.Year() != params.Year || d.Month() != time.Month(params.Month) || d.Day() != params.Day {
		return Errorf("Invalid date: %d-%02d-%02d is not a real calendar date", params.Year, params.Month, params.Day), nil
	}

	return &Result{
		Output: fmt.Sprintf("%d-%02d-%02d was/is a %s", params.Year, params.Month, params.Day, d.Weekday()),
	}, nil
}

// DaysBetweenTool computes the signed day count between two dates.
type DaysBetweenTool struct{}

func NewDaysBetweenTool() *DaysBetweenTool {
	return &DaysBetweenTool{}
}

func (t *DaysBetweenTool) Name() string { return "calculate_days_between" }
func (t *DaysBetweenTool) Description() string {
	return "Calculate exact number of days between two dates (format: YYYY-MM-DD). LLMs cannot accurately compute date differences."
}

func (t *DaysBetweenTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"start_date": {
				"type": "string",
				"description": "Start date in YYYY-MM-DD format"
			},
			"end_date": {
				"type": "string",
				"description": "End date in YYYY-MM-DD format"
			}
		},
		"required": ["start_date", "end_date"]
	}`)
}

func (t *DaysBetweenTool) Execute(_ context.Context, args json.RawMessage) (*Result, error) {
	var params struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return Errorf("invalid arguments: %v", err), nil
	}

	start, err := time.ParseInLocation(dateLayout, params.StartDate, time.UTC)
	if err != nil {
		return Errorf("Invalid date format. Use YYYY-MM-DD. Error: %v", err), nil
	}
	end, err := time.ParseInLocation(dateLayout, params.EndDate, time.UTC)
	if err != nil {
		return Errorf("Invalid date format. Use YYYY-MM-DD. Error: %v", err), nil
	}

	// time.Duration saturates around 292 years, so the difference is taken
	// on Unix seconds. Both dates are midnight UTC, making the division exact.
	days := (end.Unix() - start.Unix()) / 86400
	weeks := float64(days) / 7
	years := float64(days) / 365.25

	return &Result{
		Output: fmt.Sprintf("%d days (approximately %.2f weeks or %.2f years)", days, weeks, years),
	}, nil
}
