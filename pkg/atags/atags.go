// Copyright 2018-2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package atags reads and rewrites the ARM boot tag list handed from the
// boot loader to the kernel.
//
// Every tag starts with a two word header: the tag size in 32-bit words,
// header included, and the tag id. A tag with size zero ends the list.
package atags

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/u-root/u-bringup/pkg/logger"
	"github.com/u-root/uio/uio"
)

var log = logger.LogContainer.GetSimpleLogger()

const (
	ATAG_NONE uint32 = 0x00000000
	ATAG_CORE uint32 = 0x54410001
	ATAG_MEM  uint32 = 0x54410002

	// Header size in words
	tagHeaderWords = 2
)

var (
	ErrUnterminated = errors.New("tag list is not terminated")
	ErrTruncated    = errors.New("tag extends past the end of the list")
)

// Tag is one entry of the list with its payload kept as raw bytes.
type Tag struct {
	ID   uint32
	Data []byte
}

// MemSize returns the size field of an ATAG_MEM tag.
func (t Tag) MemSize() (uint32, bool) {
	if t.ID != ATAG_MEM || len(t.Data) < 8 {
		return 0, false
	}
	return uio.NewLittleEndianBuffer(t.Data).Read32(), true
}

// Parse splits a tag list. Anything after the terminating tag is ignored.
func Parse(b []byte) ([]Tag, error) {
	l := uio.NewLittleEndianBuffer(b)
	var tags []Tag
	for {
		if !l.Has(tagHeaderWords * 4) {
			return nil, fmt.Errorf("after %d tags: %w", len(tags), ErrUnterminated)
		}
		size := l.Read32()
		id := l.Read32()
		if size == 0 {
			return tags, nil
		}
		if size < tagHeaderWords {
			return nil, fmt.Errorf("tag %#08x has size %d: %w", id, size, ErrTruncated)
		}
		// Checked in 64 bits, int is 32 bits wide on the board
		if need := uint64(size-tagHeaderWords) * 4; need > uint64(l.Len()) {
			return nil, fmt.Errorf("tag %#08x needs %d bytes, %d left: %w", id, need, l.Len(), ErrTruncated)
		}
		n := int(size-tagHeaderWords) * 4
		tags = append(tags, Tag{ID: id, Data: l.CopyN(n)})
		if err := l.Error(); err != nil {
			return nil, err
		}
	}
}

// Marshal writes the tags followed by the terminating tag. Payloads are
// padded to whole words.
func Marshal(tags []Tag) []byte {
	l := uio.NewLittleEndianBuffer(nil)
	for _, t := range tags {
		words := (len(t.Data) + 3) / 4
		l.Write32(uint32(words + tagHeaderWords))
		l.Write32(t.ID)
		l.WriteBytes(t.Data)
		l.WriteBytes(make([]byte, words*4-len(t.Data)))
	}
	l.Write32(0)
	l.Write32(ATAG_NONE)
	return l.Data()
}

// FixupMemory sets the size of the first ATAG_MEM tag to size and leaves
// every other tag alone, later memory tags included. It reports whether the
// first memory tag was rewritten; a first memory tag too short to hold a size
// and a start address is left alone and so are the ones after it.
func FixupMemory(tags []Tag, size uint32) bool {
	for i, t := range tags {
		if t.ID != ATAG_MEM {
			continue
		}
		if len(t.Data) < 8 {
			return false
		}
		w := uio.NewLittleEndianBuffer(nil)
		w.Write32(size)
		w.WriteBytes(t.Data[4:])
		tags[i].Data = w.Data()
		return true
	}
	return false
}

// FixupFile reads the tag list at in, fixes up the memory size and writes
// the list to out.
func FixupFile(fs afero.Fs, in, out string, size uint32) error {
	b, err := afero.ReadFile(fs, in)
	if err != nil {
		return err
	}
	tags, err := Parse(b)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if old, ok := firstMemSize(tags); ok {
		log.Infof("Memory size %#x -> %#x", old, size)
	}
	if !FixupMemory(tags, size) {
		log.Warnf("%s: no memory tag, list left unchanged", in)
	}
	return afero.WriteFile(fs, out, Marshal(tags), 0644)
}

func firstMemSize(tags []Tag) (uint32, bool) {
	for _, t := range tags {
		if t.ID == ATAG_MEM {
			return t.MemSize()
		}
	}
	return 0, false
}
