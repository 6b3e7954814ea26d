//go:build linux || freebsd || netbsd || openbsd

package filesystem

// separateMetadataDescriptor indicates that metadata queries require their own
// directory descriptor.
const separateMetadataDescriptor = false
