// Package main provides a performance benchmarking tool for the calldeck
// aggregation hot path. It measures how long the full dashboard bundle
// takes to compute over synthetic row sets of increasing size, averaging
// several runs per size and generating CSV output for performance
// analysis and documentation.
//
// Usage: go run benchmark/main.go [output-file.csv]
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/calldeck/calldeck/core"
	"github.com/calldeck/calldeck/schema"
)

// BenchmarkResult holds the result of one benchmark size (cold run plus
// average of warm runs).
type BenchmarkResult struct {
	Rows     int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RowCounts []int
	Runs      int
}

func main() {
	outputFile := "benchmark-results.csv"
	if len(os.Args) == 2 {
		outputFile = os.Args[1]
	}

	config := BenchmarkConfig{
		RowCounts: []int{1_000, 10_000, 100_000, 1_000_000},
		Runs:      5,
	}

	results := runBenchmarks(config)

	if err := saveResults(outputFile, results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks executes the aggregation over each configured row count.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sizes, %d runs each\n", len(config.RowCounts), config.Runs)

	now := time.Now()
	rng := schema.TimeRange{From: now.AddDate(0, 0, -30), To: now}
	prev := core.PreviousPeriod(rng)

	for _, count := range config.RowCounts {
		fmt.Printf("Benchmarking %d rows\n", count)

		rows := syntheticCalls(rng, count)
		prevRows := syntheticCalls(prev, count/2)
		appointments := syntheticAppointments(rng, count/10)

		var cold time.Duration
		var warmTotal time.Duration
		for run := 0; run < config.Runs; run++ {
			start := time.Now()
			_ = core.BuildDashboardMetrics(rng, rows, prevRows, appointments)
			elapsed := time.Since(start)
			if run == 0 {
				cold = elapsed
			} else {
				warmTotal += elapsed
			}
		}

		warm := warmTotal
		if config.Runs > 1 {
			warm = warmTotal / time.Duration(config.Runs-1)
		}
		results = append(results, BenchmarkResult{
			Rows:     count,
			ColdTime: cold.String(),
			WarmTime: warm.String(),
		})
	}

	return results
}

// syntheticCalls generates count call rows spread uniformly over rng.
func syntheticCalls(rng schema.TimeRange, count int) []schema.CallRecord {
	r := rand.New(rand.NewSource(42))
	statuses := []schema.CallStatus{
		schema.CallCompleted, schema.CallCompleted, schema.CallCompleted,
		schema.CallMissed, schema.CallFailed,
	}
	outcomes := []string{"booked", "callback", "voicemail", "", "info"}

	span := rng.To.Sub(rng.From)
	rows := make([]schema.CallRecord, count)
	for i := range rows {
		rows[i] = schema.CallRecord{
			ID:              fmt.Sprintf("call-%d", i),
			AgentID:         fmt.Sprintf("agent-%d", r.Intn(10)),
			ClientID:        fmt.Sprintf("client-%d", r.Intn(50)),
			StartedAt:       rng.From.Add(time.Duration(r.Int63n(int64(span)))),
			DurationSeconds: 30 + r.Intn(600),
			Status:          statuses[r.Intn(len(statuses))],
			Outcome:         outcomes[r.Intn(len(outcomes))],
		}
		if r.Intn(4) == 0 {
			rows[i].Collected = schema.CollectedData{Email: "lead@example.com"}
		}
	}
	return rows
}

// syntheticAppointments generates count appointment rows inside rng.
func syntheticAppointments(rng schema.TimeRange, count int) []schema.Appointment {
	r := rand.New(rand.NewSource(43))
	statuses := []schema.AppointmentStatus{
		schema.AppointmentScheduled, schema.AppointmentConfirmed,
		schema.AppointmentCompleted, schema.AppointmentCancelled,
		schema.AppointmentNoShow,
	}

	span := rng.To.Sub(rng.From)
	rows := make([]schema.Appointment, count)
	for i := range rows {
		booked := rng.From.Add(time.Duration(r.Int63n(int64(span))))
		rows[i] = schema.Appointment{
			ID:        fmt.Sprintf("appt-%d", i),
			ClientID:  fmt.Sprintf("client-%d", r.Intn(50)),
			Date:      booked.AddDate(0, 0, 1+r.Intn(14)).Format(schema.DayFormat),
			TimeOfDay: fmt.Sprintf("%02d:00", 8+r.Intn(10)),
			Status:    statuses[r.Intn(len(statuses))],
			CreatedAt: booked,
		}
	}
	return rows
}

// saveResults writes the benchmark results to a CSV file.
func saveResults(outputFile string, results []BenchmarkResult) error {
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"rows", "cold_time", "warm_time"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := writer.Write([]string{fmt.Sprintf("%d", r.Rows), r.ColdTime, r.WarmTime}); err != nil {
			return err
		}
	}
	return nil
}

// printSummary prints a human-readable summary of the results.
func printSummary(results []BenchmarkResult) {
	fmt.Println("\nBenchmark summary:")
	for _, r := range results {
		fmt.Printf("  %9d rows: cold %s, warm %s\n", r.Rows, r.ColdTime, r.WarmTime)
	}
}
