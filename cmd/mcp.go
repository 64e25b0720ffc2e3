package cmd

import (
	"github.com/spf13/cobra"

	"github.com/calldeck/calldeck/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Calldeck MCP server",
	Long:  `Launch an MCP server that allows AI agents to query dashboard metrics via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean when running in MCP mode since stdio
		// carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, rowStore, liveCache())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
