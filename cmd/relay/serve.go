package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spetersoncode/relay/mcp"
	"github.com/spetersoncode/relay/tool"
)

type timeArgs struct {
	Timezone string `json:"timezone,omitempty" desc:"IANA timezone name, defaults to UTC"`
}

// builtinTools returns the small tool set served by the MCP server.
func builtinTools() *tool.Registry {
	return tool.NewRegistry().Add(
		tool.Func("current_time", "Get the current time", func(ctx context.Context, args timeArgs) (string, error) {
			loc := time.UTC
			if args.Timezone != "" {
				var err error
				loc, err = time.LoadLocation(args.Timezone)
				if err != nil {
					return "", err
				}
			}
			return time.Now().In(loc).Format(time.RFC3339), nil
		}),
	)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built-in tools as an MCP server over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcp.ServeStdio(builtinTools(),
			mcp.WithName("relay"),
			mcp.WithVersion("1.0.0"),
		)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
