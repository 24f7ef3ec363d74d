// file — реализация storage.Storage поверх плоских файлов:
// пара JSON-кэшей прогона, файл дорожки и журнал активности.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pribylovaa/omni-scout/internal/storage"
)

// Имена артефактов кэша внутри каталога.
const (
	arxivCacheName  = "scout_arxiv.json"
	newsCacheName   = "scout_news.json"
	scriptCacheName = "shorts_script.txt"
)

// Store — файловое хранилище. Каталоги создаются лениво при первой записи.
type Store struct {
	cacheDir string
	logPath  string

	// now подменяется в тестах журнала.
	now func() time.Time
}

// New создаёт Store с каталогом кэша и путём журнала активности.
func New(cacheDir, logPath string) *Store {
	return &Store{
		cacheDir: cacheDir,
		logPath:  logPath,
		now:      time.Now,
	}
}

// SaveScoutCache пишет пару кэш-файлов прогона.
// Пара не транзакционна: сбой на втором файле не откатывает первый.
func (s *Store) SaveScoutCache(_ context.Context, arxivJSON, newsJSON string) error {
	const op = "storage/file.SaveScoutCache"

	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return fmt.Errorf("%s: ensure_dir: %w", op, err)
	}

	if err := os.WriteFile(filepath.Join(s.cacheDir, arxivCacheName), []byte(arxivJSON), 0o644); err != nil {
		return fmt.Errorf("%s: write_arxiv: %w", op, err)
	}

	if err := os.WriteFile(filepath.Join(s.cacheDir, newsCacheName), []byte(newsJSON), 0o644); err != nil {
		return fmt.Errorf("%s: write_news: %w", op, err)
	}

	return nil
}

// LoadScoutCache читает пару кэш-файлов. Отсутствие любого — storage.ErrNotFound.
func (s *Store) LoadScoutCache(_ context.Context) (string, string, error) {
	const op = "storage/file.LoadScoutCache"

	arxivJSON, err := s.readCacheFile(arxivCacheName)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	newsJSON, err := s.readCacheFile(newsCacheName)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	return arxivJSON, newsJSON, nil
}

// SaveScript сохраняет текст дорожки последнего прогона.
func (s *Store) SaveScript(_ context.Context, script string) error {
	const op = "storage/file.SaveScript"

	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return fmt.Errorf("%s: ensure_dir: %w", op, err)
	}

	if err := os.WriteFile(filepath.Join(s.cacheDir, scriptCacheName), []byte(script), 0o644); err != nil {
		return fmt.Errorf("%s: write: %w", op, err)
	}

	return nil
}

// AppendEvent дописывает строку "<ISO-8601 c точностью до секунды> | <message>".
func (s *Store) AppendEvent(_ context.Context, message string) error {
	const op = "storage/file.AppendEvent"

	if err := os.MkdirAll(filepath.Dir(s.logPath), 0o755); err != nil {
		return fmt.Errorf("%s: ensure_dir: %w", op, err)
	}

	f, err := os.OpenFile(s.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%s: open: %w", op, err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s | %s\n", s.now().Format("2006-01-02T15:04:05"), message)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("%s: write: %w", op, err)
	}

	return nil
}

// Close — у файлового хранилища нет удерживаемых ресурсов.
func (s *Store) Close() {}

// readCacheFile читает один артефакт кэша.
func (s *Store) readCacheFile(name string) (string, error) {
	payload, err := os.ReadFile(filepath.Join(s.cacheDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", name, storage.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", name, err)
	}

	return string(payload), nil
}
