// Package langflow реализует HTTP-клиент для Langflow run API.
//
// # Обзор
//
// Клиент выполняет максимум два последовательных запроса на один вызов:
// опциональную загрузку файла (multipart POST) и запуск flow (JSON POST).
// Никаких retry, пулов или фоновой работы — клиентская утилита с линейным
// жизненным циклом.
//
// # Ключевые компоненты
//
// ## Client
//
// Инкапсулирует URL-схему (включая префикс /lf/{langflow_id} для
// Astra-хостинга), bearer-авторизацию и разбор ошибок. Сетевые ошибки
// (ErrUnreachable) и отказы API (*StatusError) различимы для оператора:
// "сервис недоступен" и "сервис доступен, но отклонил запрос" — разные
// диагнозы.
//
// ## RunRequest и Tweaks
//
// Payload запроса /api/v1/run/{endpoint}. Tweaks — свободная JSON-структура
// с переопределениями параметров компонентов; клиент не валидирует её
// против схемы flow, неизвестные ключи сервис молча игнорирует.
//
// ## ExtractReply
//
// Best-effort извлечение текста ответа по известному, но не
// гарантированному пути в документе. Отсутствие пути — не ошибка:
// вызывающий код показывает полный документ.
package langflow
