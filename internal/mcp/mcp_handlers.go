package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/calldeck/calldeck/core"
	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.RowStore
	cache   contract.QueryCache
}

// scopedConfig applies the request's client/agent/range overrides.
func (h *toolHandler) scopedConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if c := request.GetString("client", ""); c != "" {
		cfg.ClientID = c
	}
	if a := request.GetString("agent", ""); a != "" {
		cfg.AgentID = a
	}
	if r := request.GetString("range", ""); r != "" {
		cfg.Range = schema.RangeKey(r)
	}
	return cfg
}

func (h *toolHandler) handleGetCallMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.scopedConfig(request)

	metrics, err := core.ExecuteDashboardMetrics(ctx, cfg, h.store, h.cache)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("metrics computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(metrics, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetVolumeTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.scopedConfig(request)

	series, err := core.ExecuteVolume(ctx, cfg, h.store, h.cache)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("volume computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(series, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCallPatterns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.scopedConfig(request)

	patterns, err := core.ExecutePatterns(ctx, cfg, h.store, h.cache)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pattern computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(patterns, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetOutcomes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.scopedConfig(request)

	outcomes, err := core.ExecuteOutcomes(ctx, cfg, h.store, h.cache)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("outcome computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(outcomes, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetAppointmentStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.scopedConfig(request)

	stats, err := core.ExecuteAppointments(ctx, cfg, h.store, h.cache)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("appointment computation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
