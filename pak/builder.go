// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package pak

import (
	"bytes"
	"io"
	"sync"

	"github.com/pierrec/lz4"
)

// NewBuilder creates a new Builder. Do not fill the Index in the
// header, it is computed when the archive is written out.
func NewBuilder(header Header) *Builder {
	header.Index = nil
	return &Builder{header: header}
}

type pendingFile struct {
	name string

	// size of the original data
	size int64

	// data holds the lz4 compressed bytes
	data []byte
}

// Builder assembles a pak archive. Whenever Add is called the data is
// compressed immediately and kept in memory until WriteTo bundles
// everything into a ready to use archive. Add is safe to call from
// different goroutines.
type Builder struct {
	header Header

	mutex sync.Mutex
	files []pendingFile
}

// Add appends data to the builder with a given name. Blocks until lz4
// finishes compression.
func (b *Builder) Add(name string, data []byte) error {
	var compressed bytes.Buffer
	writer := lz4.NewWriter(&compressed)
	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.files = append(b.files, pendingFile{
		name: name,
		size: int64(len(data)),
		data: compressed.Bytes(),
	})
	return nil
}

// Len returns the number of files added so far.
func (b *Builder) Len() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return len(b.files)
}

// WriteTo bundles everything added to the Builder into an archive.
// The builder keeps its contents and can be written out again.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	header := b.header
	var offset int64
	for _, f := range b.files {
		header.Index = append(header.Index, IndexEntry{
			Name:           f.name,
			Offset:         offset,
			Size:           f.size,
			CompressedSize: int64(len(f.data)),
		})
		offset += int64(len(f.data))
	}

	rawHeader, err := gobEncode(header)
	if err != nil {
		return 0, err
	}

	var written int64
	for _, chunk := range [][]byte{magic[:], int64ToBinary(int64(len(rawHeader))), rawHeader} {
		num, err := w.Write(chunk)
		written += int64(num)
		if err != nil {
			return written, err
		}
	}
	for _, f := range b.files {
		num, err := w.Write(f.data)
		written += int64(num)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
