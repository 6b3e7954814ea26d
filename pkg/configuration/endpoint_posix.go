//go:build !windows

package configuration

// endpointName is the name of the default listing service endpoint within the
// data directory. On POSIX systems it is a UNIX domain socket.
const endpointName = "listing.sock"
