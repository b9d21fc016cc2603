package langflow

import (
	"errors"
	"fmt"
)

// Ошибки клиента.
var (
	// ErrInvalidTweaks — строка tweaks не является валидным JSON.
	ErrInvalidTweaks = errors.New("invalid tweaks JSON")

	// ErrNoComponents — файл для загрузки указан, а целевые компоненты — нет.
	ErrNoComponents = errors.New("file upload requires target components")

	// ErrFileNotFound — локальный файл для загрузки не найден.
	ErrFileNotFound = errors.New("upload file not found")

	// ErrUnreachable — сетевая ошибка: DNS, connection refused, таймаут.
	ErrUnreachable = errors.New("langflow API unreachable")

	// ErrBadUploadResponse — upload endpoint не вернул file_path.
	ErrBadUploadResponse = errors.New("upload response missing file_path")
)

// StatusError — ответ API с кодом вне 2xx: сервис доступен, но отклонил
// запрос. Body сохраняется дословно для вывода оператору.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Body)
}
