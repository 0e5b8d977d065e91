package mcp

import "github.com/mark3labs/mcp-go/mcp"

// askAuralisTool defines the ask_auralis MCP tool.
var askAuralisTool = mcp.NewTool("ask_auralis",
	mcp.WithDescription("Send a message to the Auralis assistant and get the full reply, detected intent, and follow-up suggestions."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The user message to process"),
	),
	mcp.WithString("session_id",
		mcp.Description("Session identifier for multi-turn conversations (a new session is created when omitted)"),
	),
	mcp.WithString("page",
		mcp.Description("Website page the visitor is on, e.g. /pricing"),
	),
)

// classifyIntentTool defines the classify_intent MCP tool.
var classifyIntentTool = mcp.NewTool("classify_intent",
	mcp.WithDescription("Classify a message against the intent table without generating a reply. Returns intent, confidence, matched keywords, and suggested actions as JSON."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The message to classify"),
	),
)

// searchKnowledgeTool defines the search_knowledge MCP tool.
var searchKnowledgeTool = mcp.NewTool("search_knowledge",
	mcp.WithDescription("Search the company knowledge base for fact snippets relevant to a query."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language search query"),
	),
)

// portalCommandTool defines the portal_command MCP tool.
var portalCommandTool = mcp.NewTool("portal_command",
	mcp.WithDescription("Run an enterprise portal command such as 'Show pending QA tasks' or 'Generate revenue report'."),
	mcp.WithString("command",
		mcp.Required(),
		mcp.Description("The natural language command to execute"),
	),
)
