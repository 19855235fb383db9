package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/toolbox/internal/adapters/driving/mcp"
	"github.com/custodia-labs/toolbox/internal/core/domain"
	"github.com/custodia-labs/toolbox/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the solve_hanoi and
invert_matrix tools to AI assistants.

By default, the server communicates over stdio using JSON-RPC. Use --port to
start a streamable HTTP server instead.

Examples:
  # Stdio mode (default)
  toolbox mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  toolbox mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "toolbox": {
        "command": "/path/to/toolbox",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// Stdout carries the protocol in stdio mode; request logs go to stderr.
	ports := &mcp.Ports{
		Hanoi:  newHanoiService(settings, logger.NewTagged(domain.ServiceHanoi.Tag(), cmd.ErrOrStderr())),
		Matrix: newMatrixService(logger.NewTagged(domain.ServiceMatrix.Tag(), cmd.ErrOrStderr())),
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
