package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rna-msa/internal/adapters/driving/mcp"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

Tools:
  get_family        fetch a family and summarise its alignment
  parse_stockholm   parse Stockholm text supplied by the assistant
  decode_structure  decode a dot-bracket consensus into base pairs

Resources:
  rnamsa://families              family identifiers (JSON)
  rnamsa://families/{identifier} raw Stockholm text

By default, the server communicates over stdio using JSON-RPC.
Use --port to start a streamable HTTP server instead.

Examples:
  # Stdio mode (for desktop assistants)
  rnamsa mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  rnamsa mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "rnamsa": {
        "command": "/path/to/rnamsa",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{Family: familyService})
	if err != nil {
		return err
	}

	startWatching(cmd)

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
