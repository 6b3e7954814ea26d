// Package syscall is an internal system call shim exposing facilities that
// golang.org/x/sys/unix doesn't provide. It will go away once
// golang.org/x/sys/unix adds these definitions and implementations.
package syscall
