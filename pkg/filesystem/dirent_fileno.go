//go:build freebsd || netbsd || openbsd

package filesystem

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	// direntInodeOffset is the offset of the inode number field within a raw
	// directory entry record.
	direntInodeOffset = int(unsafe.Offsetof(unix.Dirent{}.Fileno))
	// direntInodeSize is the size of the inode number field.
	direntInodeSize = int(unsafe.Sizeof(unix.Dirent{}.Fileno))
)
