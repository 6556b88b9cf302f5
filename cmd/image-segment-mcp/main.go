package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ironsheep/image-segment-mcp/internal/config"
	"github.com/ironsheep/image-segment-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-segment-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-segment-mcp - MCP server for graph-based image segmentation")
			fmt.Println()
			fmt.Println("Usage: image-segment-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug    Enable debug logging\n", config.LogLevelEnv)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	var opts []server.Option
	if strings.EqualFold(os.Getenv(config.LogLevelEnv), "debug") {
		log.Printf("Image Segment MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		opts = append(opts, server.WithLogf(log.Printf))
	}

	srv := server.New(opts...)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
