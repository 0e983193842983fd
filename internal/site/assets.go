package site

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
)

// copyAsset copies the static file name from srcDir into dstDir, keeping its
// relative path.
func copyAsset(srcDir, dstDir, name string) error {
	rel := filepath.Clean(filepath.FromSlash(strings.TrimLeft(name, "/")))
	if rel == "." || strings.HasPrefix(rel, "..") {
		return errors.ConfigError("asset path must stay inside the assets directory").
			WithContext("value", name).Build()
	}
	src := filepath.Join(srcDir, rel)
	in, err := os.Open(src) //nolint:gosec // configured asset path
	if err != nil {
		msg := "open static asset"
		if stderrors.Is(err, fs.ErrNotExist) {
			msg = "static asset not found"
		}
		return errors.WrapError(err, errors.CategoryFileSystem, msg).WithContext("file", src).Build()
	}
	defer func() { _ = in.Close() }()

	dst := filepath.Join(dstDir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "create asset directory").WithContext("path", dst).Build()
	}
	out, err := os.Create(dst) //nolint:gosec // path inside the staging directory
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "create asset").WithContext("path", dst).Build()
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.WrapError(err, errors.CategoryFileSystem, "copy asset").WithContext("path", dst).Build()
	}
	if err := out.Close(); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "close asset").WithContext("path", dst).Build()
	}
	return nil
}

// writeFile writes data to rel under root, creating parent directories.
func writeFile(root, rel string, data []byte) error {
	dst := filepath.Join(root, filepath.FromSlash(strings.TrimLeft(rel, "/")))
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "create output directory").WithContext("path", dst).Build()
	}
	//nolint:gosec // site files are public
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write output file").WithContext("path", dst).Build()
	}
	return nil
}
