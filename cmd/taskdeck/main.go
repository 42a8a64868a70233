package main

import (
	"os"
	"strings"

	"taskdeck/internal/cli"
)

// taskVerbs may be used without the "tasks" prefix.
var taskVerbs = map[string]bool{
	"list": true,
	"ls":   true,
	"add":  true,
	"done": true,
	"pin":  true,
	"rm":   true,
	"edit": true,
	"sort": true,
}

func rewriteTaskShorthandArgs(argv []string) []string {
	// Convenience: `taskdeck add milk` works like `taskdeck tasks add milk`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv before parsing.
	// Persistent flags may come first (e.g. `taskdeck --dir ... done 1`), so find the first positional.
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":       true,
		"--workspace": true,
		"--format":    true,
		"--log-level": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++ // skip value if present
			}
			continue
		}

		if taskVerbs[a] {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "tasks")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteTaskShorthandArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
