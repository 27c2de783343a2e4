// Package core holds the small set of abstractions shared by every podbump
// package: the filesystem interface, file permissions and sentinel errors.
package core
