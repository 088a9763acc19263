package mcp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecc-labs/ecc/internal/jsondoc"
)

// FSPathPlaceholder is the sentinel value the source template ships for the
// filesystem server's directory argument.
const FSPathPlaceholder = "YOUR_FILESYSTEM_PATH_HERE"

// pathDecision enumerates the filesystem-path reconciliation outcomes, in
// priority order. Modeling the precedence explicitly keeps it auditable and
// testable without going through the prompt.
type pathDecision int

const (
	// decisionFlag: an explicit --fs-path resolved to a real directory.
	decisionFlag pathDecision = iota
	// decisionFlagInvalid: --fs-path was given but is not a directory.
	decisionFlagInvalid
	// decisionBackup: the pre-merge backup held a valid prior path.
	decisionBackup
	// decisionStale: the backup held a prior path that no longer exists.
	decisionStale
	// decisionNoPrior: no flag and no usable prior state.
	decisionNoPrior
)

// decidePath picks the reconciliation branch. flagPath must already be
// expanded and absolute; backupValue is the last filesystem args element
// from the pre-merge backup ("" when absent).
func decidePath(flagPath, backupValue string) pathDecision {
	if flagPath != "" {
		if isDir(flagPath) {
			return decisionFlag
		}
		return decisionFlagInvalid
	}
	if backupValue != "" && backupValue != FSPathPlaceholder {
		if isDir(backupValue) {
			return decisionBackup
		}
		return decisionStale
	}
	return decisionNoPrior
}

// ReconcileFilesystemPath applies the filesystem server path policy to the
// client config at configPath. The prior value is read from the pre-merge
// backup at bakPath (the merge itself overwrites it with the template
// placeholder). Stale prior paths and the no-prior case fall through to an
// interactive prompt unless noPrompt is set.
func ReconcileFilesystemPath(configPath, bakPath, flagPath string, noPrompt bool, in io.Reader, out io.Writer) error {
	backupValue, err := backupFilesystemPath(bakPath)
	if err != nil {
		return err
	}

	resolvedFlag := ""
	if flagPath != "" {
		resolvedFlag = expandPath(flagPath)
	}

	switch decidePath(resolvedFlag, backupValue) {
	case decisionFlag:
		if err := SetFilesystemPath(configPath, resolvedFlag); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Set filesystem path to: %s\n", resolvedFlag)
		return nil

	case decisionFlagInvalid:
		fmt.Fprintf(out, "  Warning: Directory not found: %s (skipping)\n", resolvedFlag)
		return nil

	case decisionBackup:
		if err := SetFilesystemPath(configPath, backupValue); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Filesystem MCP already configured: %s\n", backupValue)
		return nil

	case decisionStale:
		fmt.Fprintf(out, "  Warning: Previously configured path no longer exists: %s\n", backupValue)
	}

	if noPrompt {
		fmt.Fprintln(out, "  Skipped filesystem path prompt (--no-prompt)")
		return nil
	}
	return promptForPath(configPath, in, out)
}

// promptForPath asks the operator for a directory and applies it if valid.
// A blank or invalid answer is a soft skip.
func promptForPath(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "\n=== Filesystem MCP Setup ===")
	fmt.Fprint(out, "Enter the directory path for filesystem MCP (or press Enter to skip): ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintf(out, "  Skipped - you can manually set it later in %s\n", configPath)
		return nil
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		fmt.Fprintf(out, "  Skipped - you can manually set it later in %s\n", configPath)
		return nil
	}

	resolved := expandPath(answer)
	if !isDir(resolved) {
		fmt.Fprintf(out, "  Warning: Directory not found: %s (skipping)\n", resolved)
		return nil
	}
	if err := SetFilesystemPath(configPath, resolved); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Set filesystem path to: %s\n", resolved)
	return nil
}

// SetFilesystemPath rewrites the client config so that
// mcpServers.filesystem.args ends with value, creating the nested structure
// as needed. A non-empty args list has its last element replaced; an empty
// one gets value as its sole element.
func SetFilesystemPath(configPath, value string) error {
	doc, err := jsondoc.Read(configPath)
	if err != nil {
		return err
	}
	setFilesystemArgs(doc, value)
	return jsondoc.Write(configPath, doc)
}

func setFilesystemArgs(doc jsondoc.Doc, value string) {
	servers := jsondoc.EnsureObject(doc, serversKey)
	fs := jsondoc.EnsureObject(servers, "filesystem")

	raw, _ := fs.Get("args")
	args, _ := raw.([]any)
	if len(args) > 0 {
		args[len(args)-1] = value
	} else {
		args = append(args, value)
	}
	fs.Set("args", args)
}

// backupFilesystemPath extracts the last filesystem args element from the
// pre-merge backup document, or "" when no backup or no prior value exists.
func backupFilesystemPath(bakPath string) (string, error) {
	if bakPath == "" {
		return "", nil
	}
	if info, err := os.Stat(bakPath); err != nil || !info.Mode().IsRegular() {
		return "", nil
	}

	doc, err := jsondoc.Read(bakPath)
	if err != nil {
		return "", err
	}
	servers, ok := jsondoc.ChildObject(doc, serversKey)
	if !ok {
		return "", nil
	}
	fs, ok := jsondoc.ChildObject(servers, "filesystem")
	if !ok {
		return "", nil
	}
	raw, _ := fs.Get("args")
	args, _ := raw.([]any)
	if len(args) == 0 {
		return "", nil
	}
	last, _ := args[len(args)-1].(string)
	return last, nil
}

// expandPath expands a leading ~ and makes the path absolute.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
