// Package server implements the MCP (Model Context Protocol) server for
// Gemini image generation tools.
//
// This package provides a JSON-RPC 2.0 server that exposes image
// generation and editing through the MCP protocol. It's designed to
// work with Claude and other MCP-compatible clients, enabling AI
// systems to produce and modify images via the Gemini API.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - generate_image: Create an image from a text prompt
//   - edit_image: Modify an existing image with a text instruction
//   - list_models: Describe the supported models
//
// Both generation tools accept an optional output_path. When it is
// given, the image is written to disk and the result reports where it
// was saved; otherwise the result carries the image inline as base64.
//
// # Error Handling
//
// Protocol problems (malformed params, unknown tools) are returned as
// JSON-RPC error responses with standard codes. Failures of the actual
// generation - upstream API errors, refusals, unreadable input files -
// are returned as successful JSON-RPC responses whose payload carries
// success:false and a human-readable message, so a tool call never
// surfaces a raw stack trace and never takes the server down.
//
// # Configuration
//
// The server reads GEMINI_API_KEY at startup. A missing key is logged
// as a warning rather than aborting: the server still answers protocol
// requests and list_models, and each generation call fails with a
// message naming the variable.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(cfg, log)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
