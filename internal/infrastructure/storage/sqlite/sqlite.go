package sqlite

import (
	"database/sql"
	"fmt"

	"resumeforge/internal/infrastructure/migration"

	// Регистрация драйвера sqlite3
	_ "github.com/mattn/go-sqlite3"
)

// Storage - хранилище черновиков в памяти процесса. SQLite открывается с DSN
// :memory:, так что содержимое живёт ровно столько, сколько живёт сервер.
type Storage struct {
	db *sql.DB
}

func New(dsn string) (*Storage, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Одно соединение: для :memory: каждое новое соединение означало бы
	// новую пустую базу.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := migration.Up(db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}
