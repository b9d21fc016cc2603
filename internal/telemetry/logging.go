package telemetry

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// SetupLogger инициализирует логгер CLI.
//
// Вывод — текстом в stderr, чтобы не мешать данным в stdout.
// verbose включает уровень Debug; без него выводятся только
// предупреждения и ошибки.
func SetupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return WithInvocationID(logger, uuid.NewString())
}

// WithInvocationID возвращает логгер с добавленным invocation_id.
// ID связывает строки логов одного вызова: upload и run.
func WithInvocationID(logger *slog.Logger, id string) *slog.Logger {
	return logger.With("invocation_id", id)
}
