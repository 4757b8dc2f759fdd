package main

import (
	"context"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// Hardcoded test data - each test is independent
	testJobID = "550e8400-e29b-41d4-a716-446655440001"
)

func main() {
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "gigmatch-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: "http://localhost:8080/mcp/stream",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testListJobs(ctx, session)
	testRecommendJobs(ctx, session)
	testFindTalent(ctx, session)
	testBudgetAdvice(ctx, session)
	testProposalTemplate(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}

	for _, tool := range res.Tools {
		fmt.Printf("  %s: %s\n", tool.Name, tool.Description)
	}
}

func testListJobs(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list_jobs")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_jobs",
		Arguments: map[string]any{},
	})
	if err != nil {
		log.Printf("list_jobs failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("list_jobs passed")
}

func testRecommendJobs(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: recommend_jobs")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "recommend_jobs",
		Arguments: map[string]any{
			"skills": []string{"python", "machine learning", "api"},
			"top_n":  3,
		},
	})
	if err != nil {
		log.Printf("recommend_jobs failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("recommend_jobs passed")
}

func testFindTalent(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: find_talent")

	// Mode 1: by job id (expected to report not-found for the test id)
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "find_talent",
		Arguments: map[string]any{
			"job_id": testJobID,
		},
	})
	if err != nil {
		log.Printf("find_talent (job_id) failed: %v", err)
		return
	}
	printResult(result)

	// Mode 2: by tags
	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name: "find_talent",
		Arguments: map[string]any{
			"job_tags": []string{"frontend", "react"},
		},
	})
	if err != nil {
		log.Printf("find_talent (job_tags) failed: %v", err)
		return
	}
	printResult(result)
	fmt.Println("find_talent passed")
}

func testBudgetAdvice(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: budget_advice")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "budget_advice",
		Arguments: map[string]any{
			"scope": "Build a realtime dashboard with security review",
			"tags":  []string{"backend", "dashboard"},
			"slots": 2,
		},
	})
	if err != nil {
		log.Printf("budget_advice failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("budget_advice passed")
}

func testProposalTemplate(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: proposal_template")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "proposal_template",
		Arguments: map[string]any{
			"job_id": testJobID,
			"profile": map[string]any{
				"name":         "Alex",
				"skills":       []string{"go", "react"},
				"achievements": []string{"Shipped a marketplace MVP in 6 weeks"},
			},
		},
	})
	if err != nil {
		log.Printf("proposal_template failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("proposal_template passed")
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
