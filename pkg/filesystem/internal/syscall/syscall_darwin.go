// This code is derived from the golang.org/x/sys module, available at
// https://github.com/golang/sys. This code was based on the libc trampoline
// implementations in zsyscall_darwin_amd64.go.
//
// The original code license:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package syscall

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	// ATTR_BIT_MAP_COUNT is the number of attribute groups in an attrlist
	// structure.
	ATTR_BIT_MAP_COUNT = 5

	// ATTR_CMN_NAME requests the object name.
	ATTR_CMN_NAME = 0x00000001
	// ATTR_CMN_OBJTYPE requests the object vnode type.
	ATTR_CMN_OBJTYPE = 0x00000008
	// ATTR_CMN_MODTIME requests the object modification time.
	ATTR_CMN_MODTIME = 0x00000400
	// ATTR_CMN_ACCESSMASK requests the object access mask.
	ATTR_CMN_ACCESSMASK = 0x00020000

	// ATTR_FILE_DATALENGTH requests the logical length of a file's data fork.
	ATTR_FILE_DATALENGTH = 0x00000200
)

// Attrlist is the Go representation of the attrlist structure.
type Attrlist struct {
	Bitmapcount uint16
	Reserved    uint16
	Commonattr  uint32
	Volattr     uint32
	Dirattr     uint32
	Fileattr    uint32
	Forkattr    uint32
}

// Implemented in the runtime package (runtime/sys_darwin.go)
func syscall_syscall9(fn, a1, a2, a3, a4, a5, a6, a7, a8, a9 uintptr) (r1, r2 uintptr, err unix.Errno)

//go:linkname syscall_syscall9 syscall.syscall9

// Getdirentriesattr exposes the getdirentriesattr function on macOS. It returns
// true if the final batch of entries has been returned. On input, count
// specifies the maximum number of entries to return, and on output it holds
// the number of entries returned.
func Getdirentriesattr(fd int, attributes *Attrlist, buffer []byte, count *uint32, base *uint32, newState *uint32, options uint32) (last bool, err error) {
	if len(buffer) == 0 {
		return false, unix.EINVAL
	}
	r0, _, e1 := syscall_syscall9(
		libc_getdirentriesattr_trampoline_addr,
		uintptr(fd),
		uintptr(unsafe.Pointer(attributes)),
		uintptr(unsafe.Pointer(&buffer[0])),
		uintptr(len(buffer)),
		uintptr(unsafe.Pointer(count)),
		uintptr(unsafe.Pointer(base)),
		uintptr(unsafe.Pointer(newState)),
		uintptr(options),
		0,
	)
	if int32(r0) == -1 {
		if e1 != 0 {
			return false, e1
		}
		return false, unix.EINVAL
	}
	return r0 == 1, nil
}

var libc_getdirentriesattr_trampoline_addr uintptr

//go:cgo_import_dynamic libc_getdirentriesattr getdirentriesattr "/usr/lib/libSystem.B.dylib"
