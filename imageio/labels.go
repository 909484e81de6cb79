package imageio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/gbseg/segment"
)

// Label file layout, all integers little-endian, the whole stream zstd-compressed:
//
//	magic   [4]byte  "GBSL"
//	version uint8    1
//	height  uint32
//	width   uint32
//	labels  [height*width]uint32, row-major representative ids
const (
	labelMagic   = "GBSL"
	labelVersion = 1
)

// ErrBadLabelFile indicates a label stream that is truncated, has the wrong
// magic or version, or encodes an invalid partition.
var ErrBadLabelFile = errors.New("imageio: bad label file")

// WriteLabels writes p's label map to w.
func WriteLabels(w io.Writer, p *segment.Partition) error {
	n := p.Height() * p.Width()
	if n > math.MaxUint32 {
		return fmt.Errorf("imageio: %dx%d image too large for label file", p.Height(), p.Width())
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("imageio: zstd writer: %w", err)
	}
	bw := bufio.NewWriter(enc)

	header := make([]byte, 0, 13)
	header = append(header, labelMagic...)
	header = append(header, labelVersion)
	header = binary.LittleEndian.AppendUint32(header, uint32(p.Height()))
	header = binary.LittleEndian.AppendUint32(header, uint32(p.Width()))
	if _, err = bw.Write(header); err != nil {
		_ = enc.Close()
		return fmt.Errorf("imageio: write labels: %w", err)
	}
	var buf [4]byte
	for _, rep := range p.Labels() {
		binary.LittleEndian.PutUint32(buf[:], uint32(rep))
		if _, err = bw.Write(buf[:]); err != nil {
			_ = enc.Close()
			return fmt.Errorf("imageio: write labels: %w", err)
		}
	}
	if err = bw.Flush(); err != nil {
		_ = enc.Close()
		return fmt.Errorf("imageio: write labels: %w", err)
	}

	return enc.Close()
}

// ReadLabels reads a label stream written by WriteLabels and rebuilds the
// partition with segment.FromLabels.
func ReadLabels(r io.Reader) (*segment.Partition, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLabelFile, err)
	}
	defer dec.Close()
	br := bufio.NewReader(dec)

	var header [13]byte
	if _, err = io.ReadFull(br, header[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadLabelFile, err)
	}
	if string(header[:4]) != labelMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadLabelFile, header[:4])
	}
	if header[4] != labelVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadLabelFile, header[4])
	}
	h := int(binary.LittleEndian.Uint32(header[5:9]))
	w := int(binary.LittleEndian.Uint32(header[9:13]))
	if h == 0 || w == 0 {
		return nil, fmt.Errorf("%w: zero-area %dx%d", ErrBadLabelFile, h, w)
	}

	labels := make([]int, 0, min(h*w, 1<<20))
	var buf [4]byte
	for i := 0; i < h*w; i++ {
		if _, err = io.ReadFull(br, buf[:]); err != nil {
			return nil, fmt.Errorf("%w: label %d of %d: %v", ErrBadLabelFile, i, h*w, err)
		}
		labels = append(labels, int(binary.LittleEndian.Uint32(buf[:])))
	}

	p, err := segment.FromLabels(h, w, labels)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLabelFile, err)
	}

	return p, nil
}
