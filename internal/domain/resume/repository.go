package resume

import "context"

// Repository - порт хранилища черновиков. Реализация держит черновики только
// в памяти процесса: перезапуск сервера их теряет, это ожидаемо.
type Repository interface {
	Create(ctx context.Context, d Draft) error
	Get(ctx context.Context, id string) (*Draft, error)
	Save(ctx context.Context, d Draft) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Draft, error)
}
