package main

import (
	"context"
	"fmt"
	"log"
	"os"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	ctx := context.Background()

	endpoint := os.Getenv("MCP_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080/mcp/stream"
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "job-board-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testListJobs(ctx, session)

	// Only when a spreadsheet is available
	if id := os.Getenv("TEST_SPREADSHEET_ID"); id != "" {
		testSheetsExport(ctx, session, id)
	}

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: tools/list")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("tools/list failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		fmt.Printf("  %s: %s\n", tool.Name, tool.Description)
	}
}

func testListJobs(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list_jobs")

	// Test 1: first page, no filters
	fmt.Println("\n  Test 1: first page")
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_jobs",
		Arguments: map[string]any{},
	})
	if err != nil {
		log.Printf("✗ list_jobs (page 1) failed: %v", err)
		return
	}
	printResult(result)

	// Test 2: second page filtered by category
	fmt.Println("\n  Test 2: page 2, category IT")
	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name: "list_jobs",
		Arguments: map[string]any{
			"page":     2,
			"category": "IT",
		},
	})
	if err != nil {
		log.Printf("✗ list_jobs (category) failed: %v", err)
		return
	}
	printResult(result)

	// Test 3: search that matches nothing
	fmt.Println("\n  Test 3: empty search result")
	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_jobs",
		Arguments: map[string]any{"search": "zzz"},
	})
	if err != nil {
		log.Printf("✗ list_jobs (search) failed: %v", err)
		return
	}
	printResult(result)

	fmt.Println("\nlist_jobs all tests passed")
}

func testSheetsExport(ctx context.Context, session *mcp.ClientSession, spreadsheetID string) {
	fmt.Println("\nTEST: sheets_export")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "sheets_export",
		Arguments: map[string]any{
			"sheet": map[string]any{
				"spreadsheet_id": spreadsheetID,
				"tab":            "Jobs",
			},
		},
	})
	if err != nil {
		log.Printf("sheets_export failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("sheets_export passed")
}

func printResult(res *mcp.CallToolResult) {
	if res.IsError {
		fmt.Println("  (tool reported an error)")
	}
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
