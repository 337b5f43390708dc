//go:build linux
// +build linux

// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package vfatfuse exposes a mounted *vfat.Volume as a real, single-level
// FUSE filesystem. Where the teacher's internal/fuse served a read-only
// view of byte ranges already carved out of a disk image, this package
// drives vfat's own Directory Manager, Allocator and I/O engine: every
// node operation is a Volume call. vfat.Volume has no internal
// synchronization of its own (it is single-threaded by design, spec.md
// §5), so this package is exactly the "external serialization" spec.md
// says concurrent callers must provide: one mutex around every call.
package vfatfuse

import (
	"context"
	"os"
	"sort"
	"sync"
	"time"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"

	"github.com/ostafen/vfat/pkg/vfat"
)

// FS is the root of the FUSE filesystem: a flat directory backed by a
// vfat.Volume, matching the Non-goals in spec.md §1 (no subdirectories, no
// permissions, no timestamps beyond what FUSE itself requires).
type FS struct {
	mu  sync.Mutex
	vol *vfat.Volume
}

// New wraps vol as a FUSE filesystem root.
func New(vol *vfat.Volume) *FS {
	return &FS{vol: vol}
}

func (f *FS) Root() (fusefs.Node, error) {
	return &dir{fs: f}, nil
}

type dir struct {
	fs *FS
}

func (d *dir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = os.ModeDir | 0755
	return nil
}

func (d *dir) Lookup(ctx context.Context, name string) (fusefs.Node, error) {
	d.fs.mu.Lock()
	defer d.fs.mu.Unlock()

	entries, err := d.fs.vol.List()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Name == name {
			return &file{fs: d.fs, name: name}, nil
		}
	}
	return nil, fuse.ENOENT
}

func (d *dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	d.fs.mu.Lock()
	defer d.fs.mu.Unlock()

	entries, err := d.fs.vol.List()
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	dirents := make([]fuse.Dirent, len(entries))
	for i, e := range entries {
		dirents[i] = fuse.Dirent{
			Inode: uint64(i) + 1,
			Name:  e.Name,
			Type:  fuse.DT_File,
		}
	}
	return dirents, nil
}

func (d *dir) Create(ctx context.Context, req *fuse.CreateRequest, resp *fuse.CreateResponse) (fusefs.Node, fusefs.Handle, error) {
	d.fs.mu.Lock()
	defer d.fs.mu.Unlock()

	if err := d.fs.vol.Create(req.Name); err != nil {
		return nil, nil, err
	}

	fd, err := d.fs.vol.Open(req.Name)
	if err != nil {
		return nil, nil, err
	}

	f := &file{fs: d.fs, name: req.Name}
	return f, &fileHandle{fs: d.fs, fd: fd}, nil
}

func (d *dir) Remove(ctx context.Context, req *fuse.RemoveRequest) error {
	d.fs.mu.Lock()
	defer d.fs.mu.Unlock()
	return d.fs.vol.Delete(req.Name)
}

// file is a FUSE node; all byte-range work is done by fileHandle once
// Open has produced one, matching the spec's handle/fd split between the
// Directory Manager (the node, addressed by name) and the Open File Table
// (the handle, addressed by fd).
type file struct {
	fs   *FS
	name string
}

func (f *file) Attr(ctx context.Context, a *fuse.Attr) error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()

	entries, err := f.fs.vol.List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Name == f.name {
			a.Mode = 0644
			a.Size = uint64(e.Size)
			a.Mtime = time.Now()
			return nil
		}
	}
	return fuse.ENOENT
}

func (f *file) Open(ctx context.Context, req *fuse.OpenRequest, resp *fuse.OpenResponse) (fusefs.Handle, error) {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()

	fd, err := f.fs.vol.Open(f.name)
	if err != nil {
		return nil, err
	}
	return &fileHandle{fs: f.fs, fd: fd}, nil
}

type fileHandle struct {
	fs *FS
	fd int
}

func (h *fileHandle) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()

	if err := h.fs.vol.Lseek(h.fd, uint32(req.Offset)); err != nil {
		return err
	}

	buf := make([]byte, req.Size)
	n, err := h.fs.vol.Read(h.fd, buf)
	if err != nil {
		return err
	}
	resp.Data = buf[:n]
	return nil
}

func (h *fileHandle) Write(ctx context.Context, req *fuse.WriteRequest, resp *fuse.WriteResponse) error {
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()

	if err := h.fs.vol.Lseek(h.fd, uint32(req.Offset)); err != nil {
		return err
	}

	n, err := h.fs.vol.Write(h.fd, req.Data)
	resp.Size = n
	return err
}

func (h *fileHandle) Release(ctx context.Context, req *fuse.ReleaseRequest) error {
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()
	return h.fs.vol.Close(h.fd)
}
