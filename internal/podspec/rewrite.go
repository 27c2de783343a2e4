package podspec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// versionAssignment matches `.version`, optional whitespace, `=`, optional
// whitespace and a non-empty double-quoted literal. Group 1 is everything
// before the opening quote.
var versionAssignment = regexp.MustCompile(`(\.version\s*=\s*)"[^"]+"`)

// Rewrite replaces the quoted literal of every version assignment in content
// with version and returns the new text together with the number of
// replacements. Content without a match is returned unchanged.
func Rewrite(content, version string) (string, int) {
	count := 0
	updated := versionAssignment.ReplaceAllStringFunc(content, func(match string) string {
		submatches := versionAssignment.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}
		count++
		return submatches[1] + `"` + version + `"`
	})
	return updated, count
}

// RewriteJSON sets the top-level "version" key of a JSON podspec, keeping the
// rest of the document byte-for-byte. It reports false and returns data
// untouched when the key is absent.
func RewriteJSON(data []byte, version string) ([]byte, bool, error) {
	if !gjson.ValidBytes(data) {
		return nil, false, fmt.Errorf("invalid JSON")
	}
	current := gjson.GetBytes(data, "version")
	if !current.Exists() {
		return data, false, nil
	}
	if current.Type == gjson.String && current.Str == version {
		return data, false, nil
	}

	updated, err := sjson.SetBytes(data, "version", version)
	if err != nil {
		return nil, false, fmt.Errorf("failed to set version: %w", err)
	}
	return updated, true, nil
}

// IsJSON reports whether path names a JSON podspec.
func IsJSON(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".json")
}
