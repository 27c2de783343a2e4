package discovery

import "strings"

// PodspecSuffix is the file suffix of Ruby CocoaPods manifests.
const PodspecSuffix = ".podspec"

// PodspecJSONSuffix is the file suffix of JSON CocoaPods manifests.
const PodspecJSONSuffix = ".podspec.json"

// DefaultSuffixes returns the manifest suffixes searched when none are configured.
func DefaultSuffixes() []string {
	return []string{PodspecSuffix}
}

// MatchesSuffix reports whether name ends with one of suffixes.
func MatchesSuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// DescribeSuffixes renders suffixes for diagnostics, e.g. ".podspec" or
// ".podspec or .podspec.json".
func DescribeSuffixes(suffixes []string) string {
	return strings.Join(suffixes, " or ")
}
