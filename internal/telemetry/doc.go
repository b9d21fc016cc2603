// Package telemetry настраивает structured logging через slog.
//
// Диагностика пишется в stderr, данные CLI — в stdout;
// --verbose переключает уровень на Debug.
package telemetry
