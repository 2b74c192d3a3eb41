package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// DemoPrompts are canned prompts that each require a tool call to answer
// correctly. A frozen model cannot fake any of them.
var DemoPrompts = []string{
	"What is the current timestamp?",
	"Generate a random number between 1 and 1000",
	"Generate a UUID for me",
	"What is the SHA256 hash of the word 'hello'?",
	"Convert 1073741824 bytes to human readable format",
	"What day of the week was January 1, 2000?",
	"How many days between 2020-01-01 and 2025-12-31?",
}

// DemoRunner drives the endpoint with the canned prompts and then proves
// non-determinism with a paired timestamp comparison.
type DemoRunner struct {
	client *Client
	out    io.Writer

	// Delay between requests and before the second timestamp read.
	RequestDelay   time.Duration
	TimestampDelay time.Duration
}

// NewDemoRunner creates a runner writing progress to out.
func NewDemoRunner(c *Client, out io.Writer) *DemoRunner {
	return &DemoRunner{
		client:         c,
		out:            out,
		RequestDelay:   time.Second,
		TimestampDelay: 3 * time.Second,
	}
}

// Run executes the full demonstration sequence. Individual prompt failures
// are reported and skipped; only a transport-level setup problem aborts.
func (d *DemoRunner) Run(ctx context.Context) error {
	rule := strings.Repeat("=", 80)

	fmt.Fprintln(d.out, rule)
	fmt.Fprintln(d.out, "Testing the tool-calling agent")
	fmt.Fprintln(d.out, rule)
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "These prompts prove the agent is actually executing code:")
	fmt.Fprintln(d.out, "- Current timestamp (model training data is frozen)")
	fmt.Fprintln(d.out, "- Random numbers (model cannot generate true randomness)")
	fmt.Fprintln(d.out, "- UUIDs (model cannot create valid UUIDs)")
	fmt.Fprintln(d.out, "- Cryptographic hashes (model cannot compute actual hashes)")
	fmt.Fprintln(d.out, "- Date calculations (model cannot accurately compute date arithmetic)")

	for i, prompt := range DemoPrompts {
		fmt.Fprintln(d.out)
		fmt.Fprintln(d.out, rule)
		fmt.Fprintf(d.out, "Test %d/%d: %s\n", i+1, len(DemoPrompts), prompt)
		fmt.Fprintln(d.out, rule)

		result, err := d.client.Invoke(ctx, prompt)
		if err != nil {
			fmt.Fprintf(d.out, "Error: %v\n", err)
		} else {
			fmt.Fprintf(d.out, "Result: %s\n", result)
		}

		if i < len(DemoPrompts)-1 {
			if err := sleep(ctx, d.RequestDelay); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, rule)
	fmt.Fprintln(d.out, "VERIFICATION: calling the timestamp tool twice to prove it's dynamic")
	fmt.Fprintln(d.out, rule)

	first, second, err := d.timestampPair(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "First:  %s\n", first)
	fmt.Fprintf(d.out, "Second: %s\n", second)
	if first != second {
		fmt.Fprintln(d.out, "Timestamps differ: the tool is definitely being called.")
	} else {
		fmt.Fprintln(d.out, "Timestamps are identical: something is wrong.")
	}

	return nil
}

// timestampPair issues the same timestamp prompt twice, separated by a delay.
func (d *DemoRunner) timestampPair(ctx context.Context) (string, string, error) {
	const prompt = "What is the current timestamp?"

	first, err := d.client.Invoke(ctx, prompt)
	if err != nil {
		return "", "", err
	}
	if err := sleep(ctx, d.TimestampDelay); err != nil {
		return "", "", err
	}
	second, err := d.client.Invoke(ctx, prompt)
	if err != nil {
		return "", "", err
	}
	return first, second, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
