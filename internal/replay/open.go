package replay

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

var (
	magicZstd  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicGzip  = []byte{0x1f, 0x8b}
	magicBzip2 = []byte("BZh")
)

// Open reads the decoded replay document at path. Compressed documents
// (zstd, gzip, bzip2) are detected by their magic bytes.
func Open(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read decompresses r if needed and decodes the document.
func Read(r io.Reader) (*Replay, error) {
	data, err := ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// ReadAll returns the (decompressed) bytes of a decoded replay document.
func ReadAll(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(4)

	var src io.Reader = br
	switch {
	case bytes.HasPrefix(head, magicZstd):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		src = dec
	case bytes.HasPrefix(head, magicGzip):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		src = gz
	case bytes.HasPrefix(head, magicBzip2):
		src = bzip2.NewReader(br)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	return data, nil
}
