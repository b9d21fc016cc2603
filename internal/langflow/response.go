package langflow

import "encoding/json"

// ExtractReply достаёт текст ответа по известному, но не гарантированному
// пути outputs[0].outputs[0].results.message.text. Принимается и вариант
// message.data.text, который отдают некоторые версии API.
// Отсутствие пути на любом уровне — не ошибка: возвращается false,
// и вызывающий код показывает полный документ.
func ExtractReply(raw json.RawMessage) (string, bool) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", false
	}

	outer, ok := firstItem(doc["outputs"])
	if !ok {
		return "", false
	}
	inner, ok := firstItem(outer["outputs"])
	if !ok {
		return "", false
	}
	results, ok := inner["results"].(map[string]any)
	if !ok {
		return "", false
	}
	message, ok := results["message"].(map[string]any)
	if !ok {
		return "", false
	}

	if text, ok := message["text"].(string); ok {
		return text, true
	}
	if data, ok := message["data"].(map[string]any); ok {
		if text, ok := data["text"].(string); ok {
			return text, true
		}
	}

	return "", false
}

// firstItem возвращает первый элемент JSON-массива, если это объект.
func firstItem(v any) (map[string]any, bool) {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return nil, false
	}
	m, ok := arr[0].(map[string]any)
	return m, ok
}
