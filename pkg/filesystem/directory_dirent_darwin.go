package filesystem

// separateMetadataDescriptor indicates that metadata queries require their own
// directory descriptor. On macOS, the directory reading emulation in
// golang.org/x/sys/unix manipulates the descriptor's offset in a way that can
// cause subsequent fstatat calls on it to fail with EBADF.
const separateMetadataDescriptor = true
