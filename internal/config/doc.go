// Package config собирает конфигурацию вызова из флагов,
// переменных окружения и dotenv-файлов.
//
// Приоритет для каждого поля независимый: флаг > окружение > default.
// Окружение читается один раз при старте, после загрузки .env
// и .env.local — никаких ambient-обращений к os.Getenv по ходу вызова.
package config
