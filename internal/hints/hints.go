// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// maxSuggestions caps "did you mean" candidates.
const maxSuggestions = 3

// maxTypoDistance is the edit distance still considered a typo.
const maxTypoDistance = 2

// ForMissingInput suggests Markdown files next to a missing input path whose
// names are close to the requested one.
func ForMissingInput(path string) string {
	dir := filepath.Dir(path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && fileutil.IsMarkdown(e.Name()) {
			names = append(names, e.Name())
		}
	}

	matches := closeNames(filepath.Base(path), names)
	if len(matches) == 0 {
		return ""
	}
	for i, m := range matches {
		matches[i] = filepath.Join(dir, m)
	}
	return format("did you mean " + strings.Join(matches, ", ") + "?")
}

// closeNames returns the names that fuzzily contain target or are within a
// small edit distance of it, closest first.
func closeNames(target string, names []string) []string {
	type candidate struct {
		name     string
		distance int
	}

	lowerTarget := strings.ToLower(target)
	var found []candidate

	for _, rank := range fuzzy.RankFindFold(target, names) {
		found = append(found, candidate{rank.Target, rank.Distance})
	}
	for _, name := range names {
		if fuzzy.MatchFold(target, name) {
			continue // already ranked above
		}
		if d := fuzzy.LevenshteinDistance(lowerTarget, strings.ToLower(name)); d <= maxTypoDistance {
			found = append(found, candidate{name, d})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].distance != found[j].distance {
			return found[i].distance < found[j].distance
		}
		return found[i].name < found[j].name
	})

	var out []string
	for _, c := range found {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.name)
	}
	return out
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating the user-level file.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForDirectoryOutput returns a hint for a directory input paired with a file output.
func ForDirectoryOutput() string {
	return format("when the input is a directory, the output must be a directory too")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
