package models

// Tool identifiers form a closed enumeration with an explicit display-name
// table, so an unknown id is a detectable condition instead of a
// silently-formatted guess.
type Tool string

const (
	ToolCodeInterpreter Tool = "code_interpreter"
	ToolSearch          Tool = "search"
	ToolWebBrowser      Tool = "web_browser"
	ToolImageGeneration Tool = "image_generation"
	ToolFileUpload      Tool = "file_upload"
	ToolDataAnalysis    Tool = "data_analysis"
)

var toolNames = map[Tool]string{
	ToolCodeInterpreter: "Code Interpreter",
	ToolSearch:          "Search",
	ToolWebBrowser:      "Web Browser",
	ToolImageGeneration: "Image Generation",
	ToolFileUpload:      "File Upload",
	ToolDataAnalysis:    "Data Analysis",
}

// Tools lists every known tool in display order.
func Tools() []Tool {
	return []Tool{
		ToolCodeInterpreter,
		ToolSearch,
		ToolWebBrowser,
		ToolImageGeneration,
		ToolFileUpload,
		ToolDataAnalysis,
	}
}

// KnownTool reports whether id names a tool this application understands.
func KnownTool(id string) bool {
	_, ok := toolNames[Tool(id)]
	return ok
}

// ToolDisplayName resolves a tool id to its display name. The second
// return is false for unknown ids.
func ToolDisplayName(id string) (string, bool) {
	name, ok := toolNames[Tool(id)]
	return name, ok
}
