package syncer

import (
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/RustedBytes/file-syncer/config"
)

// Map a configured compression level to a gzip level.
func gzipLevel(level config.CompressionLevel) int {
	switch level {
	case config.LevelFast:
		return gzip.BestSpeed
	case config.LevelMax:
		return gzip.BestCompression
	default:
		return gzip.DefaultCompression
	}
}

// Compress input to output.
//
// @param in - Input to compress.
//
// @param out - Output to write compressed data to.
//
func Compress(in io.Reader, out io.Writer, level int) error {
	enc, err := gzip.NewWriterLevel(out, level)
	if err != nil {
		return err
	}

	// Copy content...
	_, err = io.Copy(enc, in)
	if err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Decompress input to output.
//
// @param in - Input to decompress.
//
// @param out - Output to write decompressed data to.
//
func Decompress(in io.Reader, out io.Writer) error {
	d, err := gzip.NewReader(in)
	if err != nil {
		return err
	}
	defer d.Close()

	// Copy content...
	_, err = io.Copy(out, d)
	return err
}
