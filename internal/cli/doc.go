// Package cli реализует команду langrun.
//
// # Обзор
//
// Вызов flow — строго линейная последовательность:
// конфигурация → (опционально) загрузка файла → сборка запроса →
// отправка → вывод/сохранение. Фатальная ошибка на любом шаге
// прерывает все последующие; никаких retry и возвратов назад.
//
// # Ключевые компоненты
//
// ## Run
//
// Пайплайн вызова. Ошибки ввода (невалидный tweaks JSON, файл без
// целевых компонентов) и конфигурации (нет endpoint'а) возвращаются
// до первого сетевого вызова.
//
// ## Output
//
// Форматирование вывода. Данные (ответ flow) идут в stdout,
// сообщения и предупреждения — в stderr. Это позволяет использовать
// pipe: langrun "hi" --raw | jq .
//
// Режимы stdout:
//   - извлечённый текст ответа — по умолчанию
//   - полный документ с отступами — если текст извлечь не удалось
//   - тело ответа как получено — с флагом --raw
package cli
