package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidFilename = errors.New("invalid filename")

// ローカルディスクへのアップロード保存。
// 保存名は「uuid_元ファイル名」で衝突を避ける
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Save はrを保存して保存名を返す。ディレクトリは無ければ作る
func (s *LocalStore) Save(originalName string, r io.Reader) (string, error) {
	cleaned := sanitizeFilename(originalName)
	if cleaned == "" {
		return "", ErrInvalidFilename
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + "_" + cleaned
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}
	return name, nil
}

// パストラバーサル対策。パス区切りと「..」を取り除いてファイル名だけにする
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.Clean("/" + name))
	if name == "/" || name == "." || name == ".." {
		return ""
	}
	return name
}
