// storage определяет контракты доступа к плоскому файловому кэшу
// и журналу активности omni-scout.
package storage

//go:generate mockgen -source=internal/storage/storage.go -destination=internal/storage/mocks/storage.go -package=mocks

import (
	"context"
	"errors"
)

// ErrNotFound — запрошенный артефакт кэша отсутствует.
var ErrNotFound = errors.New("not found")

// ScoutCache описывает операции над кэшем прогона.
type ScoutCache interface {
	// SaveScoutCache сохраняет пару сырых JSON-боксов одного прогона
	// (ArXiv и новости). Запись пары не транзакционна: частичная запись
	// одного файла при сбое второго оставляет несогласованную пару —
	// это фиксируется журналом, но не откатывается.
	SaveScoutCache(ctx context.Context, arxivJSON, newsJSON string) error
	// LoadScoutCache читает пару обратно. Отсутствие любого из файлов — ErrNotFound.
	LoadScoutCache(ctx context.Context) (arxivJSON string, newsJSON string, err error)
	// SaveScript сохраняет сгенерированный текст дорожки последнего прогона.
	SaveScript(ctx context.Context, script string) error
}

// Journal описывает журнал активности.
type Journal interface {
	// AppendEvent дописывает одну строку вида "<timestamp> | <message>"
	// в журнал активности. Вызывающие обязаны трактовать ошибку
	// как best-effort: сбой журнала не должен менять основной результат.
	AppendEvent(ctx context.Context, message string) error
}

// Storage задаёт контракт доступа к хранилищу omni-scout.
type Storage interface {
	ScoutCache
	Journal
	Close()
}
