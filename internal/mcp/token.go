package mcp

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// GHTokenPlaceholder is the sentinel value the source template ships for the
// GitHub personal access token.
const GHTokenPlaceholder = "YOUR_GITHUB_PAT_HERE"

// lookupToken obtains a live credential; swapped out in tests.
var lookupToken = ghAuthToken

// AutoFillToken replaces every occurrence of the token placeholder in the
// just-written client config with a credential from the gh CLI. The file is
// re-read as raw text so the substitution is exact and positionless. An
// unavailable helper or empty output leaves the placeholder with a tip.
func AutoFillToken(configPath string, out io.Writer) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", configPath, err)
	}
	if !bytes.Contains(raw, []byte(GHTokenPlaceholder)) {
		return nil
	}

	token := lookupToken()
	if token == "" {
		fmt.Fprintln(out, "  TIP: Run 'gh auth login' to auto-fill GitHub token")
		return nil
	}

	updated := bytes.ReplaceAll(raw, []byte(GHTokenPlaceholder), []byte(token))
	if err := os.WriteFile(configPath, updated, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}
	fmt.Fprintln(out, "  Auto-filled GITHUB_PERSONAL_ACCESS_TOKEN from gh CLI")
	return nil
}

// ghAuthToken returns the token from `gh auth token`, or "" when the helper
// is missing or produces no output. Helper absence is not an error.
func ghAuthToken() string {
	ghPath, err := exec.LookPath("gh")
	if err != nil {
		return ""
	}
	output, err := exec.Command(ghPath, "auth", "token").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}
