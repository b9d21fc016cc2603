package langflow

import (
	"encoding/json"
	"fmt"
)

// DefaultIOType — тип входа/выхода по умолчанию.
const DefaultIOType = "chat"

// TweakPathKey — зарезервированный ключ tweak'а, через который компонент
// получает путь загруженного файла.
const TweakPathKey = "path"

// Tweaks — переопределения параметров компонентов на один вызов.
// Ключ верхнего уровня — ID компонента, значение — его параметры.
type Tweaks map[string]map[string]any

// ParseTweaks разбирает tweaks из JSON-строки.
// Пустая строка означает отсутствие tweaks.
// Невалидный JSON — фатальная ошибка ввода: запрос не отправляется.
func ParseTweaks(s string) (Tweaks, error) {
	if s == "" {
		return nil, nil
	}

	var t Tweaks
	if err := json.Unmarshal([]byte(s), &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTweaks, err)
	}
	return t, nil
}

// UploadedFile — ответ upload endpoint'а: серверный путь файла.
type UploadedFile struct {
	FilePath string `json:"file_path"`
}

// AttachFile вписывает ссылку на загруженный файл в tweaks каждого целевого
// компонента под ключом TweakPathKey. Одноимённый ключ пользователя
// перезаписывается: ссылка на файл авторитетна. Возвращает обновлённые
// tweaks и список компонентов, у которых произошла перезапись.
func AttachFile(t Tweaks, file UploadedFile, components []string) (Tweaks, []string) {
	if t == nil {
		t = make(Tweaks, len(components))
	}

	var overwritten []string
	for _, id := range components {
		params := t[id]
		if params == nil {
			params = make(map[string]any, 1)
			t[id] = params
		}
		if _, ok := params[TweakPathKey]; ok {
			overwritten = append(overwritten, id)
		}
		params[TweakPathKey] = file.FilePath
	}

	return t, overwritten
}

// RunRequest — payload запроса /api/v1/run/{endpoint}.
// Имена полей заданы wire-форматом Langflow.
type RunRequest struct {
	InputValue string `json:"input_value"`
	InputType  string `json:"input_type"`
	OutputType string `json:"output_type"`
	SessionID  string `json:"session_id,omitempty"`
	Tweaks     Tweaks `json:"tweaks,omitempty"`
}

// NewRunRequest собирает запрос. Пустые типы входа/выхода
// заменяются на DefaultIOType.
func NewRunRequest(message, inputType, outputType, sessionID string, tweaks Tweaks) RunRequest {
	if inputType == "" {
		inputType = DefaultIOType
	}
	if outputType == "" {
		outputType = DefaultIOType
	}

	return RunRequest{
		InputValue: message,
		InputType:  inputType,
		OutputType: outputType,
		SessionID:  sessionID,
		Tweaks:     tweaks,
	}
}
