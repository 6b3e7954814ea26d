package configuration

// endpointName is the name of the default listing service endpoint within the
// data directory. On Windows it is a file recording the named pipe name.
const endpointName = "listing.pipe"
