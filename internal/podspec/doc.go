// Package podspec rewrites the version field of CocoaPods manifests.
//
// Ruby podspecs are handled with a single global regular-expression
// substitution over the whole file, not a Ruby parser: every
// `.version = "..."` assignment is replaced, including ones that are not the
// spec's own version (for example a subspec or a dependency helper written
// in the same shape). JSON podspecs have their top-level "version" key set
// in place.
package podspec
