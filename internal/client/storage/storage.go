// Пакет storage содержит интерфейс и ключи локального хранилища клиента.
package storage

import "context"

// Ключи, под которыми после успешного входа сохраняются данные пользователя.
// Значения записываются в том виде, в каком их вернул сервер.
const (
	KeyUserName   = "userName"
	KeyUserPortal = "userPortal"
)

type (
	// ValueSetter - интерфейс для сохранения значения по ключу.
	ValueSetter interface {
		Set(ctx context.Context, key, value string) error // Сохраняет значение, перезаписывая существующее.
	}

	// ValueGetter - интерфейс для получения значения по ключу.
	ValueGetter interface {
		Get(ctx context.Context, key string) (value string, ok bool, err error) // Возвращает значение и признак его наличия.
	}

	// IKeyValueStorage - интерфейс локального хранилища клиента вида ключ-значение.
	// Хранилище переживает перезапуск приложения.
	IKeyValueStorage interface {
		ValueSetter
		ValueGetter
		Delete(ctx context.Context, key string) error // Удаляет значение по ключу.
	}
)
