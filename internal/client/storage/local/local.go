// Пакет local реализует локальное хранилище клиента поверх встраиваемой БД SQLite.
package local

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	_ "github.com/golang-migrate/migrate/v4/database/sqlite"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

// Store - реализует интерфейс storage.IKeyValueStorage поверх файла SQLite.
// Данные переживают перезапуск приложения.
type Store struct {
	// Поле conn содержит объект соединения с БД
	conn *sql.DB
}

// NewStore - применяет миграции и возвращает новый экземпляр SQLite-хранилища.
func NewStore(ctx context.Context, path string) (*Store, error) {
	if err := runMigrations(path); err != nil {
		return nil, fmt.Errorf("failed to run DB migrations: %w", err)
	}

	// Подключение к базе данных
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("error connection to database: %v by path %s", err, path)
	}

	// Проверка соединения с БД
	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("error checking connection with database: %v", err)
	}

	return &Store{
		conn: db,
	}, nil
}

//go:embed migrations/*.sql
var migrationsDir embed.FS

func runMigrations(path string) error {
	d, err := iofs.New(migrationsDir, "migrations")
	if err != nil {
		return fmt.Errorf("failed to return an iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, "sqlite://"+path)
	if err != nil {
		return fmt.Errorf("failed to get a new migrate instance: %w", err)
	}
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to apply migrations to the DB: %w", err)
		}
	}
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		return fmt.Errorf("failed to close migrate source: %w", srcErr)
	}
	if dbErr != nil {
		return fmt.Errorf("failed to close migrate database: %w", dbErr)
	}
	return nil
}

// Set - сохраняет значение по ключу, перезаписывая существующее.
func (s Store) Set(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO local_store (key, value)
	VALUES (?, ?)
	ON CONFLICT (key) DO UPDATE SET value = excluded.value
`
	_, err := s.conn.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("upsert value error, %w", err)
	}
	return nil
}

// Get - возвращает значение по ключу и признак его наличия.
func (s Store) Get(ctx context.Context, key string) (string, bool, error) {
	query := `
	SELECT value FROM local_store WHERE key = ?
`
	var value string
	err := s.conn.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select value error, %w", err)
	}
	return value, true, nil
}

// Delete - удаляет значение по ключу. Отсутствие ключа ошибкой не считается.
func (s Store) Delete(ctx context.Context, key string) error {
	query := `
	DELETE FROM local_store WHERE key = ?
`
	_, err := s.conn.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("delete value error, %w", err)
	}
	return nil
}

// Close - закрывает соединение с БД.
func (s Store) Close() error {
	return s.conn.Close()
}
