package syncer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RustedBytes/file-syncer/config"
	"github.com/RustedBytes/file-syncer/lib/gitw"
)

// Scripted Backend for orchestrator tests. Cloning materializes the seeded
// remote snapshot (plus a metadata directory) into the target dir.
type fakeBackend struct {
	seed          map[string][]byte
	status        string
	statusFn      func(dir string) (string, error)
	branchMissing bool

	calls         []string
	clonedBranch  string
	createdBranch string
	commitSubject string
	commitBody    string
	pushedBranch  string
}

func (f *fakeBackend) writeSeed(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, ".git", "config"), []byte("[core]\n"), 0644); err != nil {
		return err
	}

	for rel, content := range f.seed {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, content, 0644); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeBackend) Clone(ctx context.Context, url string, dir string) error {
	f.calls = append(f.calls, "clone")
	return f.writeSeed(dir)
}

func (f *fakeBackend) CloneBranch(ctx context.Context, url string, branch string, dir string) error {
	f.calls = append(f.calls, "clone-branch")
	if f.branchMissing {
		return fmt.Errorf("%w: %s", gitw.ErrBranchNotFound, branch)
	}
	f.clonedBranch = branch
	return f.writeSeed(dir)
}

func (f *fakeBackend) CreateBranch(ctx context.Context, dir string, name string) error {
	f.calls = append(f.calls, "create-branch")
	f.createdBranch = name
	return nil
}

func (f *fakeBackend) Status(ctx context.Context, dir string) (string, error) {
	f.calls = append(f.calls, "status")
	if f.statusFn != nil {
		return f.statusFn(dir)
	}
	return f.status, nil
}

func (f *fakeBackend) StageAll(ctx context.Context, dir string) error {
	f.calls = append(f.calls, "stage")
	return nil
}

func (f *fakeBackend) Commit(ctx context.Context, dir string, subject string, body string) error {
	f.calls = append(f.calls, "commit")
	f.commitSubject = subject
	f.commitBody = body
	return nil
}

func (f *fakeBackend) Push(ctx context.Context, dir string, branch string) error {
	f.calls = append(f.calls, "push")
	f.pushedBranch = branch
	return nil
}

func testConfig(folder string) config.SyncConfig {
	return config.SyncConfig{
		FolderPath: folder,
		RepoURL:    "git@example.com:user/repo.git",
		Branch:     "main",
		Level:      config.LevelDefault,
		Workers:    1,
	}
}

func TestPushWithoutChangesIsNoOp(t *testing.T) {
	folder := t.TempDir()
	writeFile(t, filepath.Join(folder, "hello.txt"), "hello")

	backend := &fakeBackend{
		seed:   map[string][]byte{"hello.txt": []byte("hello")},
		status: "",
	}

	err := New(testConfig(folder), backend).Push(context.Background())
	require.NoError(t, err)

	assert.Contains(t, backend.calls, "status")
	assert.NotContains(t, backend.calls, "stage")
	assert.NotContains(t, backend.calls, "commit")
	assert.NotContains(t, backend.calls, "push")
}

func TestPushSingleNewFileCommitsAndPushes(t *testing.T) {
	folder := t.TempDir()
	writeFile(t, filepath.Join(folder, "hello.txt"), "hello")

	backend := &fakeBackend{
		statusFn: func(dir string) (string, error) {
			// The scratch working tree holds the mirrored file by now
			assert.FileExists(t, filepath.Join(dir, "hello.txt"))
			return "?? hello.txt", nil
		},
	}

	err := New(testConfig(folder), backend).Push(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"clone-branch", "status", "stage", "commit", "push"}, backend.calls)
	assert.Equal(t, "Sync 1 file (1 added)", backend.commitSubject)
	assert.Equal(t, "Added files:\n  + hello.txt", backend.commitBody)
	assert.Equal(t, "main", backend.pushedBranch)
}

func TestPushFallsBackWhenBranchIsMissing(t *testing.T) {
	folder := t.TempDir()
	writeFile(t, filepath.Join(folder, "hello.txt"), "hello")

	backend := &fakeBackend{
		branchMissing: true,
		status:        "?? hello.txt",
	}

	cfg := testConfig(folder)
	cfg.Branch = "feature"
	err := New(cfg, backend).Push(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"clone-branch", "clone", "create-branch", "status", "stage", "commit", "push"}, backend.calls)
	assert.Equal(t, "feature", backend.createdBranch)
	assert.Equal(t, "feature", backend.pushedBranch)
}

func TestPushWithCompressionStoresSuffixedFile(t *testing.T) {
	folder := t.TempDir()
	writeFile(t, filepath.Join(folder, "notes.md"), "notes")

	backend := &fakeBackend{
		statusFn: func(dir string) (string, error) {
			assert.FileExists(t, filepath.Join(dir, "notes.md-gzipped.txt"))
			assert.NoFileExists(t, filepath.Join(dir, "notes.md"))
			return "?? notes.md-gzipped.txt", nil
		},
	}

	cfg := testConfig(folder)
	cfg.Compress = true
	err := New(cfg, backend).Push(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Sync 1 file (1 added)", backend.commitSubject)
}

func TestPushFailsForMissingFolder(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "does-not-exist"))

	err := New(cfg, &fakeBackend{}).Push(context.Background())
	assert.ErrorContains(t, err, "failed to resolve folder path")
}

func TestPullRestoresCompressedFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Compress(bytes.NewReader([]byte("compressed content")), &buf, gzip.DefaultCompression))

	backend := &fakeBackend{
		seed: map[string][]byte{
			"notes.md-gzipped.txt": buf.Bytes(),
			"plain.txt":            []byte("plain"),
		},
	}

	folder := filepath.Join(t.TempDir(), "restored")
	cfg := testConfig(folder)
	cfg.Compress = true
	err := New(cfg, backend).Pull(context.Background())
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(folder, "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, "compressed content", string(got))

	plain, err := os.ReadFile(filepath.Join(folder, "plain.txt"))
	require.NoError(t, err)
	assert.Equal(t, "plain", string(plain))

	// The VCS metadata directory never leaves the scratch clone
	assert.NoDirExists(t, filepath.Join(folder, ".git"))
}

func TestPullCreatesDestinationFolder(t *testing.T) {
	backend := &fakeBackend{seed: map[string][]byte{"a.txt": []byte("a")}}

	folder := filepath.Join(t.TempDir(), "brand", "new", "dir")
	err := New(testConfig(folder), backend).Pull(context.Background())
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(folder, "a.txt"))
}

func TestPullDoesNotFallBackForMissingBranch(t *testing.T) {
	backend := &fakeBackend{branchMissing: true}

	folder := t.TempDir()
	err := New(testConfig(folder), backend).Pull(context.Background())
	assert.ErrorContains(t, err, "failed to clone repository")
	assert.NotContains(t, backend.calls, "clone")
}
