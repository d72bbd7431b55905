package pipeline

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/kurochkinivan/project_ingest/internal/domain"
)

type archiveFormat int

const (
	formatUnknown archiveFormat = iota
	formatZip
	formatTarGzip
	formatTarZstd
)

func (f archiveFormat) String() string {
	switch f {
	case formatZip:
		return "zip"
	case formatTarGzip:
		return "tar.gz"
	case formatTarZstd:
		return "tar.zst"
	default:
		return "unknown"
	}
}

var (
	zipMagic      = []byte("PK\x03\x04")
	zipEmptyMagic = []byte("PK\x05\x06")
	gzipMagic     = []byte{0x1f, 0x8b}
	zstdMagic     = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Extractor unpacks zip, tar.gz and tar.zst archives into a destination directory.
type Extractor struct {
	log *slog.Logger
}

func NewExtractor(log *slog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract unpacks the archive at archivePath into destDir and returns the paths of
// the extracted regular files. Any error aborts the whole extraction and is
// returned as *domain.ExtractionError.
func (e *Extractor) Extract(ctx context.Context, archivePath, destDir string) ([]string, error) {
	extracted, err := e.extract(ctx, archivePath, destDir)
	if err != nil {
		return nil, &domain.ExtractionError{Archive: archivePath, Err: err}
	}

	return extracted, nil
}

func (e *Extractor) extract(ctx context.Context, archivePath, destDir string) (_ []string, err error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}

	format, err := detectFormat(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive header: %w", err)
	}

	if format == formatUnknown {
		return nil, domain.ErrUnsupportedArchive
	}

	if err := os.MkdirAll(destDir, dirMode); err != nil {
		return nil, fmt.Errorf("failed to create extraction directory: %w", err)
	}

	e.log.DebugContext(ctx, "extracting archive",
		slog.String("archive", archivePath),
		slog.String("format", format.String()),
		slog.String("dest", destDir),
	)

	switch format {
	case formatZip:
		return e.extractZip(ctx, f, info.Size(), destDir)

	case formatTarGzip:
		zr, gzErr := gzip.NewReader(f)
		if gzErr != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", gzErr)
		}
		defer func() { err = errors.Join(err, zr.Close()) }()

		return e.extractTar(ctx, zr, destDir)

	default:
		dec, zstdErr := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if zstdErr != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", zstdErr)
		}
		defer dec.Close()

		return e.extractTar(ctx, dec, destDir)
	}
}

func detectFormat(r io.ReaderAt) (archiveFormat, error) {
	header := make([]byte, 4)

	n, err := r.ReadAt(header, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return formatUnknown, err
	}
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, zipMagic), bytes.HasPrefix(header, zipEmptyMagic):
		return formatZip, nil
	case bytes.HasPrefix(header, gzipMagic):
		return formatTarGzip, nil
	case bytes.HasPrefix(header, zstdMagic):
		return formatTarZstd, nil
	default:
		return formatUnknown, nil
	}
}

func (e *Extractor) extractZip(ctx context.Context, r io.ReaderAt, size int64, destDir string) ([]string, error) {
	// Insecure names are rejected per entry by resolveEntryPath.
	zr, err := zip.NewReader(r, size)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("failed to open zip archive: %w", err)
	}

	zr.RegisterDecompressor(zstd.ZipMethodWinZip, zstd.ZipDecompressor())
	zr.RegisterDecompressor(zstd.ZipMethodPKWare, zstd.ZipDecompressor())

	buf := make([]byte, copyBufferSize)
	extracted := make([]string, 0, len(zr.File))

	for _, entry := range zr.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.Name == "" {
			continue
		}

		target, err := resolveEntryPath(destDir, entry.Name)
		if err != nil {
			return nil, err
		}

		mode := entry.Mode()
		switch {
		case mode.IsDir():
			if err := os.MkdirAll(target, dirMode); err != nil {
				return nil, fmt.Errorf("failed to create directory %q: %w", entry.Name, err)
			}

		case mode.IsRegular():
			if err := writeZipEntry(entry, target, buf); err != nil {
				return nil, fmt.Errorf("failed to extract %q: %w", entry.Name, err)
			}
			extracted = append(extracted, target)

		default:
			e.log.DebugContext(ctx, "skipping non-regular zip entry",
				slog.String("entry", entry.Name),
				slog.String("mode", mode.String()),
			)
		}
	}

	return extracted, nil
}

func writeZipEntry(entry *zip.File, target string, buf []byte) (err error) {
	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, rc.Close()) }()

	return writeFile(target, rc, buf)
}

func (e *Extractor) extractTar(ctx context.Context, r io.Reader, destDir string) ([]string, error) {
	tr := tar.NewReader(r)
	buf := make([]byte, copyBufferSize)

	var extracted []string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read tar entry: %w", err)
		}

		target, err := resolveEntryPath(destDir, hdr.Name)
		if err != nil {
			return nil, err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, dirMode); err != nil {
				return nil, fmt.Errorf("failed to create directory %q: %w", hdr.Name, err)
			}

		case tar.TypeReg:
			if err := writeFile(target, tr, buf); err != nil {
				return nil, fmt.Errorf("failed to extract %q: %w", hdr.Name, err)
			}
			extracted = append(extracted, target)

		default:
			e.log.DebugContext(ctx, "skipping non-regular tar entry",
				slog.String("entry", hdr.Name),
				slog.Int("type", int(hdr.Typeflag)),
			)
		}
	}

	return extracted, nil
}

// resolveEntryPath joins an archive entry name onto destDir, refusing names that
// would resolve outside of it.
func resolveEntryPath(destDir, name string) (string, error) {
	destDir = filepath.Clean(destDir)
	rel := filepath.FromSlash(strings.TrimSuffix(name, "/"))
	if rel == "" || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsafeEntryPath, name)
	}

	target := filepath.Join(destDir, rel)
	if target != destDir && !strings.HasPrefix(target, destDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsafeEntryPath, name)
	}

	return target, nil
}
