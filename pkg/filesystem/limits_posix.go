//go:build !windows && !linux

package filesystem

// maximumPathLength is the platform's PATH_MAX. Paths whose length reaches
// this value are rejected before any system call is made.
const maximumPathLength = 1024
