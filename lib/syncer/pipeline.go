package syncer

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"
	"github.com/vbauerster/mpb/v7"
	"golang.org/x/sync/errgroup"

	"github.com/RustedBytes/file-syncer/config"
	"github.com/RustedBytes/file-syncer/lib/console"
	"github.com/RustedBytes/file-syncer/lib/util"
	"github.com/RustedBytes/file-syncer/models"
)

// Pipeline mirrors a source tree into a destination tree, applying the
// configured per-file transform along the way. Source permissions are
// preserved on every entry it writes.
type Pipeline struct {
	Mode  models.TransformMode
	Level config.CompressionLevel
	// Worker pool size for file transfers. Values below 1 mean sequential.
	Workers int
	// Show a transfer progress bar while files are moved.
	Progress bool
}

// Run the pipeline from srcDir into dstDir. Directories are materialized
// first, in walk order, so every file's parent exists before the file is
// written. A failed transfer aborts the run; partially written destination
// files are left in place.
func (pl Pipeline) Run(ctx context.Context, srcDir string, dstDir string) error {
	files := []models.FileRecord{}

	err := Walk(srcDir, func(rec models.FileRecord) error {
		if rec.Kind == models.EntryDir {
			dst := filepath.Join(dstDir, filepath.FromSlash(rec.RelPath))
			if err := os.MkdirAll(dst, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dst, err)
			}
			if err := os.Chmod(dst, rec.Perm); err != nil {
				return fmt.Errorf("failed to set permissions on %s: %w", dst, err)
			}
			return nil
		}

		files = append(files, rec)
		return nil
	})
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return nil
	}

	totalSize := lo.SumBy(files, func(rec models.FileRecord) int64 { return rec.Size })
	console.Verbose("Transferring %d files (%s)...", len(files), util.FormatBytesSize(totalSize))

	// Progress bar for multi-file transfers
	var p *mpb.Progress
	var bar *mpb.Bar
	if pl.Progress && len(files) > 1 {
		p = mpb.New(mpb.WithWidth(60))
		bar = util.NewTransferBar(p, int64(len(files)), "Syncing")
	}

	workers := pl.Workers
	if workers < 1 {
		workers = 1
	}

	// Transfers are independent: no two records map to the same destination
	// path, so they can run in parallel safely.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, rec := range files {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if err := pl.syncFile(rec, srcDir, dstDir); err != nil {
				return err
			}
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}

	err = eg.Wait()
	if bar != nil {
		if err != nil {
			bar.Abort(true)
		}
		p.Wait()
	}

	return err
}

// Transfer a single file, picking copy, compress or decompress based on the
// pipeline mode and the file name.
func (pl Pipeline) syncFile(rec models.FileRecord, srcDir string, dstDir string) error {
	src := filepath.Join(srcDir, filepath.FromSlash(rec.RelPath))

	switch {
	case pl.Mode == models.TransformCompress && !HasCompressedSuffix(rec.RelPath):
		dst := filepath.Join(dstDir, filepath.FromSlash(StoredPath(rec.RelPath, pl.Mode)))
		if err := compressFile(src, dst, rec.Perm, gzipLevel(pl.Level)); err != nil {
			return fmt.Errorf("failed to compress %s: %w", rec.RelPath, err)
		}
	case pl.Mode == models.TransformDecompress && HasCompressedSuffix(rec.RelPath):
		dst := filepath.Join(dstDir, filepath.FromSlash(OriginalPath(rec.RelPath)))
		if err := decompressFile(src, dst, rec.Perm); err != nil {
			return fmt.Errorf("failed to decompress %s: %w", rec.RelPath, err)
		}
	default:
		// Files without the marker pass through a decompress pass unchanged,
		// and files already carrying it are never compressed twice
		dst := filepath.Join(dstDir, filepath.FromSlash(rec.RelPath))
		if err := copyFile(src, dst, rec.Perm); err != nil {
			return fmt.Errorf("failed to copy %s: %w", rec.RelPath, err)
		}
	}

	return nil
}

func copyFile(src string, dst string, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	// Skip rewriting a destination that already has identical content
	if same, err := sameContent(src, dst); err == nil && same {
		return os.Chmod(dst, perm)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}
	if err := dstFile.Close(); err != nil {
		return err
	}

	return os.Chmod(dst, perm)
}

func compressFile(src string, dst string, perm fs.FileMode, level int) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := Compress(srcFile, dstFile, level); err != nil {
		dstFile.Close()
		return err
	}
	if err := dstFile.Close(); err != nil {
		return err
	}

	return os.Chmod(dst, perm)
}

func decompressFile(src string, dst string, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := Decompress(srcFile, dstFile); err != nil {
		dstFile.Close()
		return err
	}
	if err := dstFile.Close(); err != nil {
		return err
	}

	return os.Chmod(dst, perm)
}

// Get file hash. Can be used to detect file changes.
// Uses XXH64 algorithm.
func fileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := xxhash.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

func sameContent(src string, dst string) (bool, error) {
	if _, err := os.Stat(dst); err != nil {
		return false, err
	}

	srcHash, err := fileHash(src)
	if err != nil {
		return false, err
	}
	dstHash, err := fileHash(dst)
	if err != nil {
		return false, err
	}

	return srcHash == dstHash, nil
}
