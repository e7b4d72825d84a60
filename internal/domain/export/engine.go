package export

import (
	"context"
	"errors"
)

var (
	ErrExportInProgress = errors.New("export already in progress for this draft")
	ErrEngineFailed     = errors.New("pdf engine failed")
)

// Engine - внешний исполнитель конвертации HTML в PDF. Доменный код не
// знает, чем именно рендерится документ.
type Engine interface {
	Render(ctx context.Context, html string, opts Options) ([]byte, error)
}
