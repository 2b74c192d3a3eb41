package tool

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestDayOfWeekKnownDates(t *testing.T) {
	cases := []struct {
		args string
		want string
	}{
		{`{"year":2000,"month":1,"day":1}`, "2000-01-01 was/is a Saturday"},
		{`{"year":1969,"month":7,"day":20}`, "1969-07-20 was/is a Sunday"},
		{`{"year":2024,"month":2,"day":29}`, "2024-02-29 was/is a Thursday"},
	}

	for _, tc := range cases {
		res, err := NewDayOfWeekTool().Execute(context.Background(), json.RawMessage(tc.args))
		if err != nil {
			t.Fatal(err)
		}
		if res.IsError {
			t.Fatalf("%s: unexpected error: %s", tc.args, res.Error)
		}
		if res.Output != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, res.Output)
		}
	}
}

func TestDayOfWeekInvalidDate(t *testing.T) {
	for _, args := range []string{
		`{"year":2021,"month":2,"day":30}`,
		`{"year":2023,"month":2,"day":29}`,
		`{"year":2021,"month":13,"day":1}`,
		`{"year":2021,"month":4,"day":0}`,
	} {
		res, err := NewDayOfWeekTool().Execute(context.Background(), json.RawMessage(args))
		if err != nil {
			t.Fatalf("%s: invalid dates must not fail the call: %v", args, err)
		}
		if !res.IsError {
			t.Fatalf("%s: expected soft error, got %q", args, res.Output)
		}
		if !strings.Contains(res.Error, "Invalid date") {
			t.Fatalf("%s: expected descriptive error, got %q", args, res.Error)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	res, err := NewDaysBetweenTool().Execute(context.Background(),
		json.RawMessage(`{"start_date":"2020-01-01","end_date":"2025-12-31"}`))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected error: %s", res.Error)
	}
	want := "2191 days (approximately 313.00 weeks or 6.00 years)"
	if res.Output != want {
		t.Fatalf("expected %q, got %q", want, res.Output)
	}
}

func TestDaysBetweenCenturiesApart(t *testing.T) {
	// A full 400-year Gregorian cycle is exactly 146097 days, well past the
	// point where a time.Duration difference would saturate.
	res, err := NewDaysBetweenTool().Execute(context.Background(),
		json.RawMessage(`{"start_date":"1700-01-01","end_date":"2100-01-01"}`))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected error: %s", res.Error)
	}
	want := "146097 days (approximately 20871.00 weeks or 400.00 years)"
	if res.Output != want {
		t.Fatalf("expected %q, got %q", want, res.Output)
	}
}

func TestDaysBetweenSigned(t *testing.T) {
	res, err := NewDaysBetweenTool().Execute(context.Background(),
		json.RawMessage(`{"start_date":"2025-12-31","end_date":"2020-01-01"}`))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.Output, "-2191 days") {
		t.Fatalf("expected signed day count, got %q", res.Output)
	}
}

func TestDaysBetweenSameDay(t *testing.T) {
	res, err := NewDaysBetweenTool().Execute(context.Background(),
		json.RawMessage(`{"start_date":"2024-06-15","end_date":"2024-06-15"}`))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.Output, "0 days") {
		t.Fatalf("expected 0 days, got %q", res.Output)
	}
}

func TestDaysBetweenMalformedInput(t *testing.T) {
	for _, args := range []string{
		`{"start_date":"01/01/2020","end_date":"2025-12-31"}`,
		`{"start_date":"2020-01-01","end_date":"yesterday"}`,
		`{"start_date":"2020-13-01","end_date":"2025-12-31"}`,
	} {
		res, err := NewDaysBetweenTool().Execute(context.Background(), json.RawMessage(args))
		if err != nil {
			t.Fatalf("%s: malformed input must not fail the call: %v", args, err)
		}
		if !res.IsError {
			t.Fatalf("%s: expected soft error, got %q", args, res.Output)
		}
		if !strings.Contains(res.Error, "YYYY-MM-DD") {
			t.Fatalf("%s: error should name the expected format, got %q", args, res.Error)
		}
	}
}
