package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shaiso/Langrun/internal/langflow"
)

// Output управляет выводом CLI.
// Данные — в stdout, сообщения — в stderr.
type Output struct {
	w    io.Writer
	errW io.Writer
}

// NewOutput создаёт Output поверх stdout/stderr.
func NewOutput() *Output {
	return &Output{
		w:    os.Stdout,
		errW: os.Stderr,
	}
}

// PrintResponse выводит ответ API.
// В raw-режиме тело печатается как получено. Иначе — извлечённый текст
// ответа, а если путь к нему отсутствует — полный документ с отступами.
func (o *Output) PrintResponse(raw json.RawMessage, rawMode bool) {
	if rawMode {
		fmt.Fprintln(o.w, string(bytes.TrimSpace(raw)))
		return
	}

	if text, ok := langflow.ExtractReply(raw); ok {
		fmt.Fprintln(o.w, text)
		return
	}

	o.JSON(raw)
}

// JSON выводит документ с отступами.
// Тело, не являющееся JSON, печатается как есть.
func (o *Output) JSON(raw json.RawMessage) {
	fmt.Fprintln(o.w, string(indent(raw)))
}

// Save записывает ответ в файл как форматированный JSON.
func (o *Output) Save(path string, raw json.RawMessage) error {
	data := append(bytes.Clone(indent(raw)), '\n')
	return os.WriteFile(path, data, 0o644)
}

// Success выводит сообщение об успехе в stderr.
func (o *Output) Success(msg string) {
	fmt.Fprintln(o.errW, msg)
}

// Warn выводит предупреждение в stderr.
func (o *Output) Warn(msg string) {
	fmt.Fprintln(o.errW, "Warning: "+msg)
}

func indent(raw json.RawMessage) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return bytes.TrimSpace(raw)
	}
	return buf.Bytes()
}
