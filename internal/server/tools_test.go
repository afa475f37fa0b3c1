package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) != 3 {
		t.Fatalf("got %d tools, want 3", len(tools))
	}

	wantNames := map[string]bool{
		"generate_image": false,
		"edit_image":     false,
		"list_models":    false,
	}

	for _, tool := range tools {
		if _, ok := wantNames[tool.Name]; !ok {
			t.Errorf("unexpected tool: %s", tool.Name)
			continue
		}
		wantNames[tool.Name] = true

		if tool.Description == "" {
			t.Errorf("%s: empty description", tool.Name)
		}
		if tool.InputSchema["type"] != "object" {
			t.Errorf("%s: schema type is %v, want object", tool.Name, tool.InputSchema["type"])
		}
		if _, ok := tool.InputSchema["properties"]; !ok {
			t.Errorf("%s: schema has no properties", tool.Name)
		}
	}

	for name, seen := range wantNames {
		if !seen {
			t.Errorf("missing tool: %s", name)
		}
	}
}

func TestToolDefinitions_RequiredFields(t *testing.T) {
	required := map[string][]string{
		"generate_image": {"prompt"},
		"edit_image":     {"prompt", "image_path"},
		"list_models":    nil,
	}

	for _, tool := range GetToolDefinitions() {
		want := required[tool.Name]
		got, _ := tool.InputSchema["required"].([]string)

		if len(got) != len(want) {
			t.Errorf("%s: required = %v, want %v", tool.Name, got, want)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: required[%d] = %q, want %q", tool.Name, i, got[i], want[i])
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(testConfig("test-key", ""), testLogger())

	req := &MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"}
	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result is not a map: %T", resp.Result)
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("tools is not []Tool: %T", result["tools"])
	}
	if len(tools) != 3 {
		t.Errorf("got %d tools, want 3", len(tools))
	}
}
