package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	inframcp "github.com/wardsec/ward/internal/infrastructure/mcp"
)

var (
	mcpTransport string
	mcpAddr      string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Ward MCP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("WARD_SKIP_MCP_START") == "true" {
			return nil
		}
		cwd, err := os.Getwd()
		if err != nil {
			return MapError(err)
		}
		server, err := inframcp.NewServer(os.Getenv("WARD_HOME"), cwd)
		if err != nil {
			return MapError(err)
		}

		switch strings.ToLower(mcpTransport) {
		case "stdio", "":
			err = server.StartStdio()
		case "http":
			err = server.StartHTTP(mcpAddr)
		case "ws", "websocket":
			err = server.StartWebSocket(mcpAddr)
		default:
			err = fmt.Errorf("unsupported transport: %s", mcpTransport)
		}
		return MapError(err)
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "stdio", "Transport to use (stdio, http, ws)")
	mcpCmd.Flags().StringVar(&mcpAddr, "addr", ":8080", "Address for http/ws transports")
	RootCmd.AddCommand(mcpCmd)
}
