// Package mcp merges the source MCP server definitions into the per-user
// client config, auto-fills the GitHub token placeholder via the gh CLI, and
// reconciles the filesystem server's directory path across runs.
package mcp

import (
	"fmt"
	"io"
	"os"

	"github.com/ecc-labs/ecc/internal/jsondoc"
	"github.com/ecc-labs/ecc/internal/schema"
	"github.com/ecc-labs/ecc/internal/source"
)

// serversKey is the only top-level sub-tree the merge touches. Everything
// else in the client config passes through untouched.
const serversKey = "mcpServers"

// Options control the filesystem-path reconciliation step.
type Options struct {
	// FSPath is an explicit directory for the filesystem server; it takes
	// priority over any previously configured value.
	FSPath string
	// NoPrompt suppresses the interactive path prompt.
	NoPrompt bool
}

// Sync merges the source mcp-servers template into the client config at
// configPath, then runs token auto-fill and filesystem-path reconciliation.
// A missing template is a notice, not an error.
func Sync(srcRoot, configPath string, opts Options, in io.Reader, out io.Writer) error {
	mcpPath := source.MCPFile(srcRoot)
	raw, err := os.ReadFile(mcpPath)
	if os.IsNotExist(err) {
		fmt.Fprintln(out, "  Skipping MCP merge: mcp-configs/mcp-servers.json not found")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", mcpPath, err)
	}

	fmt.Fprintf(out, "\n=== Merging MCP servers into %s ===\n", configPath)

	warnShape(raw, out)

	incoming, err := jsondoc.Parse(raw, mcpPath)
	if err != nil {
		return err
	}

	bakPath, err := jsondoc.Backup(configPath, out)
	if err != nil {
		return err
	}
	existing, err := jsondoc.Read(configPath)
	if err != nil {
		return err
	}

	merged := withMergedServers(existing, incoming)
	if err := jsondoc.Write(configPath, merged); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Merged MCP servers into: %s\n", configPath)

	fmt.Fprintf(out, "\n  NOTE: Replace YOUR_*_HERE placeholders in %s with actual values\n", configPath)

	if err := AutoFillToken(configPath, out); err != nil {
		return err
	}

	return ReconcileFilesystemPath(configPath, bakPath, opts.FSPath, opts.NoPrompt, in, out)
}

// withMergedServers returns a shallow copy of existing whose mcpServers
// sub-tree is the deep merge of both documents' server maps. Intentionally
// narrower than a full-document merge so unrelated top-level client-config
// keys cannot be clobbered.
func withMergedServers(existing, incoming jsondoc.Doc) jsondoc.Doc {
	existingServers, ok := jsondoc.ChildObject(existing, serversKey)
	if !ok {
		existingServers = jsondoc.New()
	}
	incomingServers, ok := jsondoc.ChildObject(incoming, serversKey)
	if !ok {
		incomingServers = jsondoc.New()
	}
	mergedServers := jsondoc.Merge(existingServers, incomingServers)

	result := jsondoc.New()
	for pair := existing.Oldest(); pair != nil; pair = pair.Next() {
		result.Set(pair.Key, pair.Value)
	}
	result.Set(serversKey, mergedServers)
	return result
}

func warnShape(raw []byte, out io.Writer) {
	result, err := schema.ValidateServers(raw)
	if err != nil || result.Valid {
		return
	}
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "  Warning: mcp-servers.json%s: %s\n", issue.Path, issue.Message)
	}
}
