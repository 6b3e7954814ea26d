// Package filesystem provides native directory enumeration and bulk metadata
// queries. Listings are produced directly from the platform's directory
// reading facilities (getdents/getdirentries with fstatat on POSIX systems,
// getdirentriesattr on macOS, and FindFirstFile/FindNextFile on Windows) and
// are presented in a uniform format regardless of the underlying mechanism.
package filesystem
