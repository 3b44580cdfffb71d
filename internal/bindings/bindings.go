//go:build cgo && libsecrethub && !windows

package bindings

/*
#cgo LDFLAGS: -lsecrethub
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

struct Client {
	uint64_t ID;
};

struct Secret {
	char* SecretID;
	char* DirID;
	char* RepoID;
	char* Name;
	char* BlindName;
	int VersionCount;
	int LatestVersion;
	char* Status;
	long long CreatedAt;
};

struct SecretVersion {
	char* SecretVersionID;
	struct Secret Secret;
	int Version;
	char* Data;
	long long CreatedAt;
	char* Status;
};

extern struct Client* new_Client(char** errMessage);
extern void delete_Client(struct Client* client);
extern struct SecretVersion Client_Read(struct Client* client, char* path, char** errMessage);
extern char* Client_ReadString(struct Client* client, char* path, char** errMessage);
extern char* Client_Resolve(struct Client* client, char* ref, char** errMessage);
extern char* Client_ResolveEnv(struct Client* client, char** errMessage);
extern bool Client_Exists(struct Client* client, char* path, char** errMessage);
extern void Client_Remove(struct Client* client, char* path, char** errMessage);
extern void Client_Write(struct Client* client, char* path, char* secret, char** errMessage);
*/
import "C"

import (
	"unsafe"

	"github.com/jshobe/secrethub-go/pkg/secrethub/native"
)

// Library calls into the linked libsecrethub. Every string the library
// returns was allocated with malloc and is released here after copying.
type Library struct{}

var _ native.Library = (*Library)(nil)

// Load returns the cgo-backed library.
func Load() (native.Library, error) {
	return &Library{}, nil
}

func client(h native.Handle) *C.struct_Client {
	return (*C.struct_Client)(unsafe.Pointer(uintptr(h)))
}

// takeString copies and frees a library-owned string. NULL maps to "".
func takeString(p *C.char) string {
	if p == nil {
		return ""
	}
	s := C.GoString(p)
	C.free(unsafe.Pointer(p))
	return s
}

// takeError moves the native error message into errOut.
func takeError(cerr *C.char, errOut *native.ErrorSlot) bool {
	msg := takeString(cerr)
	if errOut != nil {
		errOut.Set(msg)
	}
	return msg != ""
}

func decodeSecret(s *C.struct_Secret) native.RawSecret {
	return native.RawSecret{
		SecretID:      takeString(s.SecretID),
		DirID:         takeString(s.DirID),
		RepoID:        takeString(s.RepoID),
		Name:          takeString(s.Name),
		BlindName:     takeString(s.BlindName),
		VersionCount:  int32(s.VersionCount),
		LatestVersion: int32(s.LatestVersion),
		Status:        takeString(s.Status),
		CreatedAt:     int64(s.CreatedAt),
	}
}

func decodeSecretVersion(v *C.struct_SecretVersion) native.RawSecretVersion {
	return native.RawSecretVersion{
		SecretVersionID: takeString(v.SecretVersionID),
		Secret:          decodeSecret(&v.Secret),
		Version:         int32(v.Version),
		Data:            takeString(v.Data),
		CreatedAt:       int64(v.CreatedAt),
		Status:          takeString(v.Status),
	}
}

func (*Library) NewClient(errOut *native.ErrorSlot) native.Handle {
	var cerr *C.char
	c := C.new_Client(&cerr)
	if takeError(cerr, errOut) {
		return 0
	}
	return native.Handle(uintptr(unsafe.Pointer(c)))
}

func (*Library) DeleteClient(h native.Handle) {
	if h == 0 {
		return
	}
	C.delete_Client(client(h))
}

func (*Library) Read(h native.Handle, path string, errOut *native.ErrorSlot) native.RawSecretVersion {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var cerr *C.char
	v := C.Client_Read(client(h), cpath, &cerr)
	if takeError(cerr, errOut) {
		return native.RawSecretVersion{}
	}
	return decodeSecretVersion(&v)
}

func (*Library) ReadString(h native.Handle, path string, errOut *native.ErrorSlot) string {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var cerr *C.char
	out := C.Client_ReadString(client(h), cpath, &cerr)
	if takeError(cerr, errOut) {
		return ""
	}
	return takeString(out)
}

func (*Library) Resolve(h native.Handle, ref string, errOut *native.ErrorSlot) string {
	cref := C.CString(ref)
	defer C.free(unsafe.Pointer(cref))

	var cerr *C.char
	out := C.Client_Resolve(client(h), cref, &cerr)
	if takeError(cerr, errOut) {
		return ""
	}
	return takeString(out)
}

func (*Library) ResolveEnv(h native.Handle, errOut *native.ErrorSlot) string {
	var cerr *C.char
	out := C.Client_ResolveEnv(client(h), &cerr)
	if takeError(cerr, errOut) {
		return ""
	}
	return takeString(out)
}

func (*Library) Exists(h native.Handle, path string, errOut *native.ErrorSlot) bool {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var cerr *C.char
	ok := C.Client_Exists(client(h), cpath, &cerr)
	if takeError(cerr, errOut) {
		return false
	}
	return bool(ok)
}

func (*Library) Remove(h native.Handle, path string, errOut *native.ErrorSlot) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var cerr *C.char
	C.Client_Remove(client(h), cpath, &cerr)
	takeError(cerr, errOut)
}

func (*Library) Write(h native.Handle, path, value string, errOut *native.ErrorSlot) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cvalue := C.CString(value)
	defer func() {
		C.memset(unsafe.Pointer(cvalue), 0, C.size_t(len(value)))
		C.free(unsafe.Pointer(cvalue))
	}()

	var cerr *C.char
	C.Client_Write(client(h), cpath, cvalue, &cerr)
	takeError(cerr, errOut)
}
