// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/calldeck/calldeck/internal/contract"
)

// NewMCPServer initializes and configures the CallDeck MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.RowStore, cache contract.QueryCache) *server.MCPServer {
	s := server.NewMCPServer(
		"CallDeck Dashboard Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
		cache:   cache,
	}

	// --- 1. Tool: get_call_metrics ---
	s.AddTool(mcp.NewTool("get_call_metrics",
		mcp.WithDescription("Compute headline call KPIs with sparklines and period-over-period trends."),
		mcp.WithString("client", mcp.Description("Tenant to scope the metrics to (defaults to the configured client).")),
		mcp.WithString("agent", mcp.Description("Voice agent to scope the metrics to.")),
		mcp.WithString("range", mcp.Description("Time range key. Defaults to '7d'."), mcp.Enum("7d", "30d", "90d", "this-month", "last-month")),
	), h.handleGetCallMetrics)

	// --- 2. Tool: get_volume_trend ---
	s.AddTool(mcp.NewTool("get_volume_trend",
		mcp.WithDescription("Compute the daily call volume series with the peak day marked."),
		mcp.WithString("client", mcp.Description("Tenant to scope the series to.")),
		mcp.WithString("range", mcp.Description("Time range key."), mcp.Enum("7d", "30d", "90d", "this-month", "last-month")),
	), h.handleGetVolumeTrend)

	// --- 3. Tool: get_call_patterns ---
	s.AddTool(mcp.NewTool("get_call_patterns",
		mcp.WithDescription("Compute hour-of-day and day-of-week call activity with busiest and quietest hours."),
		mcp.WithString("client", mcp.Description("Tenant to scope the patterns to.")),
		mcp.WithString("agent", mcp.Description("Voice agent to scope the patterns to.")),
		mcp.WithString("range", mcp.Description("Time range key."), mcp.Enum("7d", "30d", "90d", "this-month", "last-month")),
	), h.handleGetCallPatterns)

	// --- 4. Tool: get_outcomes ---
	s.AddTool(mcp.NewTool("get_outcomes",
		mcp.WithDescription("Compute the call outcome distribution and the number of captured leads."),
		mcp.WithString("client", mcp.Description("Tenant to scope the distribution to.")),
		mcp.WithString("agent", mcp.Description("Voice agent to scope the distribution to.")),
		mcp.WithString("range", mcp.Description("Time range key."), mcp.Enum("7d", "30d", "90d", "this-month", "last-month")),
	), h.handleGetOutcomes)

	// --- 5. Tool: get_appointment_stats ---
	s.AddTool(mcp.NewTool("get_appointment_stats",
		mcp.WithDescription("Compute appointment statistics: show-up rate, lead time, status split, and booking trends."),
		mcp.WithString("client", mcp.Description("Tenant to scope the statistics to.")),
		mcp.WithString("range", mcp.Description("Time range key."), mcp.Enum("7d", "30d", "90d", "this-month", "last-month")),
	), h.handleGetAppointmentStats)

	return s
}

// StartMCPServer starts the CallDeck MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.RowStore, cache contract.QueryCache) error {
	s := NewMCPServer(baseCfg, store, cache)
	return server.ServeStdio(s)
}
