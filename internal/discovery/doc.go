// Package discovery walks a project tree and collects the manifest files
// whose version podbump keeps in sync with the VERSION file.
package discovery
