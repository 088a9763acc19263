package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ecc-labs/ecc/internal/branding"
	"github.com/ecc-labs/ecc/internal/config"
	"github.com/ecc-labs/ecc/internal/hooks"
	"github.com/ecc-labs/ecc/internal/linker"
	"github.com/ecc-labs/ecc/internal/mcp"
	"github.com/ecc-labs/ecc/internal/source"
	"github.com/spf13/cobra"
)

var (
	linkSrc        string
	linkDest       string
	linkClaudeJSON string
	linkFSPath     string
	linkNoPrompt   bool
)

func init() {
	linkCmd.Flags().StringVar(&linkSrc, "src", "", "Source config directory (auto-detected if omitted)")
	linkCmd.Flags().StringVar(&linkDest, "dest", "", "Destination directory for symlinks (default ~/"+branding.HomeDir()+")")
	linkCmd.Flags().StringVar(&linkClaudeJSON, "claude-json", "", "Path to the client config (default ~/"+branding.ClientConfigFile()+")")
	linkCmd.Flags().StringVar(&linkFSPath, "fs-path", "", "Filesystem MCP path (skips prompt)")
	linkCmd.Flags().BoolVar(&linkNoPrompt, "no-prompt", false, "Non-interactive mode, skip all prompts")
	rootCmd.AddCommand(linkCmd)
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link configs into ~/" + branding.HomeDir() + " and merge hooks/MCP servers",
	Long: `Symlink the source tree's config directories into your per-user Claude
directory, deep-merge hooks into settings.json, and merge MCP server
definitions into the client config. Existing customizations are preserved;
anything overwritten in place gets a .bak sibling first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		out := cmd.OutOrStdout()

		src, err := resolveSource()
		if err != nil {
			return err
		}
		dest, err := resolveDest()
		if err != nil {
			return err
		}
		claudeJSON, err := resolveClientConfig()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Source: %s\n", src)
		fmt.Fprintf(out, "Destination: %s\n", dest)

		if err := os.MkdirAll(dest, 0755); err != nil {
			return fmt.Errorf("creating destination %s: %w", dest, err)
		}

		if err := linker.LinkDirectories(src, dest, out); err != nil {
			return err
		}

		if err := hooks.MergeIntoSettings(src, dest, out); err != nil {
			return err
		}

		opts := mcp.Options{FSPath: linkFSPath, NoPrompt: linkNoPrompt}
		if err := mcp.Sync(src, claudeJSON, opts, cmd.InOrStdin(), out); err != nil {
			return err
		}

		links, err := linker.Links(dest)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "\nDone! Linked directories:")
		for _, l := range links {
			fmt.Fprintf(out, "  %s -> %s\n", l.Name, l.Target)
		}
		return nil
	},
}

// resolveSource picks the source tree: flag, then config/env, then
// auto-detection from the executable's location.
func resolveSource() (string, error) {
	if linkSrc != "" {
		return source.Resolve(linkSrc)
	}
	if v := config.Get("source"); v != "" {
		return source.Resolve(v)
	}
	return source.Detect()
}

func resolveDest() (string, error) {
	if linkDest != "" {
		return filepath.Abs(linkDest)
	}
	if v := config.Get("destination"); v != "" {
		return filepath.Abs(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

func resolveClientConfig() (string, error) {
	if linkClaudeJSON != "" {
		return filepath.Abs(linkClaudeJSON)
	}
	if v := config.Get("client_config"); v != "" {
		return filepath.Abs(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.ClientConfigFile()), nil
}
