package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ecc-labs/ecc/internal/config"
	"github.com/ecc-labs/ecc/internal/jsondoc"
	"github.com/ecc-labs/ecc/internal/linker"
	"github.com/ecc-labs/ecc/internal/mcp"
	"github.com/ecc-labs/ecc/internal/source"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the linked installation",
	Long: `Run read-only diagnostic checks: source tree detection, destination
symlink integrity, client config parseability, remaining placeholder values,
and gh CLI availability.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		out := cmd.OutOrStdout()

		src := checkSource(out)
		checkLinks(out, src)
		checkClientConfig(out)
		checkGH(out)
		return nil
	},
}

// checkSource reports source detection state and returns the source root
// ("" when undetectable).
func checkSource(out io.Writer) string {
	src, err := resolveSource()
	if err != nil {
		fmt.Fprintf(out, "[!!] source: %v\n", err)
		return ""
	}
	fmt.Fprintf(out, "[OK] source: %s\n", src)
	return src
}

// checkLinks verifies each allow-listed destination entry is a symlink
// resolving into the source tree.
func checkLinks(out io.Writer, src string) {
	dest, err := resolveDest()
	if err != nil {
		fmt.Fprintf(out, "[!!] destination: %v\n", err)
		return
	}

	links, err := linker.Links(dest)
	if err != nil {
		fmt.Fprintf(out, "[!!] destination: %v\n", err)
		return
	}
	byName := make(map[string]string, len(links))
	for _, l := range links {
		byName[l.Name] = l.Target
	}

	for _, name := range source.Dirs {
		target, ok := byName[name]
		switch {
		case !ok:
			fmt.Fprintf(out, "[--] %s: not linked\n", name)
		case src != "" && !strings.HasPrefix(target, src+string(filepath.Separator)):
			fmt.Fprintf(out, "[!!] %s: links outside source tree (%s)\n", name, target)
		default:
			fmt.Fprintf(out, "[OK] %s -> %s\n", name, target)
		}
	}
}

// checkClientConfig parses the client config and flags leftover placeholders.
func checkClientConfig(out io.Writer) {
	path, err := resolveClientConfig()
	if err != nil {
		fmt.Fprintf(out, "[!!] client config: %v\n", err)
		return
	}

	if _, err := jsondoc.Read(path); err != nil {
		fmt.Fprintf(out, "[!!] client config: %v\n", err)
		return
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(out, "[--] client config: %s not present yet\n", path)
		return
	}
	if err != nil {
		fmt.Fprintf(out, "[!!] client config: %v\n", err)
		return
	}

	var leftovers []string
	for _, placeholder := range []string{mcp.GHTokenPlaceholder, mcp.FSPathPlaceholder} {
		if strings.Contains(string(raw), placeholder) {
			leftovers = append(leftovers, placeholder)
		}
	}
	if len(leftovers) > 0 {
		fmt.Fprintf(out, "[!!] client config: placeholder values remain (%s)\n", strings.Join(leftovers, ", "))
		return
	}
	fmt.Fprintf(out, "[OK] client config: %s\n", path)
}

// checkGH reports whether the credential helper is on PATH.
func checkGH(out io.Writer) {
	if _, err := exec.LookPath("gh"); err != nil {
		fmt.Fprintln(out, "[--] gh CLI: not found (token auto-fill unavailable)")
		return
	}
	fmt.Fprintln(out, "[OK] gh CLI: found")
}
