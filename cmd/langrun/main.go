// Langrun — инструмент командной строки для запуска Langflow flows
// через HTTP API.
//
// Использование:
//
//	langrun [flags] MESSAGE
//
// Сообщение отправляется на run endpoint flow; ответ печатается в stdout
// или сохраняется в файл. Endpoint и токен берутся из флагов либо из
// переменных окружения (FLOW_ID, APPLICATION_TOKEN), в том числе
// из .env / .env.local.
package main

import (
	"fmt"
	"os"

	"github.com/shaiso/Langrun/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	rootCmd := cli.NewRootCmd(version)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
