package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaiso/Langrun/internal/config"
	"github.com/shaiso/Langrun/internal/langflow"
	"github.com/shaiso/Langrun/internal/telemetry"
)

// Options — значения флагов одного вызова.
type Options struct {
	Endpoint   string
	Token      string
	LangflowID string
	BaseURL    string
	UploadFile string
	Components string
	TweaksJSON string
	InputType  string
	OutputType string
	SessionID  string
	SaveOutput string
	Raw        bool
	Verbose    bool
	Timeout    time.Duration
}

// NewRootCmd создаёт корневую команду langrun.
func NewRootCmd(version string) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "langrun [flags] MESSAGE",
		Short: "Run a Langflow flow from the command line",
		Long: `Langrun sends a message to a remote Langflow flow, with optional
tweaks and file upload, and prints or saves the JSON response.

Endpoint and token fall back to the FLOW_ID and APPLICATION_TOKEN
environment variables, loaded from .env / .env.local if present.`,
		Example: `  langrun "Hello!" --endpoint my_chat --application_token ABC123
  langrun "Analyze" --upload_file ./data.csv --components ParseData-r4Fhk`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), args[0], opts, NewOutput())
		},
	}

	cmd.Flags().StringVar(&opts.Endpoint, "endpoint", "", "Flow ID or custom endpoint name (env FLOW_ID)")
	cmd.Flags().StringVar(&opts.Token, "application_token", "", "Langflow application token (env APPLICATION_TOKEN)")
	cmd.Flags().StringVar(&opts.LangflowID, "langflow_id", "", "Astra organization ID (env LANGFLOW_ID)")
	cmd.Flags().StringVar(&opts.BaseURL, "base_url", "", "Langflow API base URL (env LANGFLOW_BASE_URL)")
	cmd.Flags().StringVar(&opts.UploadFile, "upload_file", "", "Path to a file to upload")
	cmd.Flags().StringVar(&opts.Components, "components", "", "Comma-separated component IDs to attach the file to")
	cmd.Flags().StringVar(&opts.TweaksJSON, "tweaks", "", "Tweaks as a JSON string")
	cmd.Flags().StringVar(&opts.InputType, "input_type", langflow.DefaultIOType, "Input type")
	cmd.Flags().StringVar(&opts.OutputType, "output_type", langflow.DefaultIOType, "Output type")
	cmd.Flags().StringVar(&opts.SessionID, "session_id", "", "Session ID for chat memory")
	cmd.Flags().StringVar(&opts.SaveOutput, "save_output", "", "Save the response to this file")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Print raw JSON without formatting")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose/debug output")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", config.DefaultTimeout, "HTTP request timeout")

	return cmd
}

// Run выполняет полный цикл вызова flow:
// конфигурация → (опционально) загрузка файла → запрос → вывод.
// Фатальная ошибка на любом шаге прерывает все последующие.
func Run(ctx context.Context, message string, opts Options, out *Output) error {
	logger := telemetry.SetupLogger(opts.Verbose)

	// Ошибки ввода проверяются до любого сетевого вызова.
	tweaks, err := langflow.ParseTweaks(opts.TweaksJSON)
	if err != nil {
		return err
	}

	components := splitComponents(opts.Components)
	if opts.UploadFile != "" && len(components) == 0 {
		return fmt.Errorf("%w: pass --components with --upload_file", langflow.ErrNoComponents)
	}

	config.LoadDotenv()
	cfg, err := config.Resolve(opts.BaseURL, opts.LangflowID, opts.Endpoint, opts.Token, opts.Timeout)
	if err != nil {
		return err
	}

	client := langflow.NewClient(langflow.Config{
		BaseURL:    cfg.BaseURL,
		LangflowID: cfg.LangflowID,
		Token:      cfg.Token,
		Timeout:    cfg.Timeout,
		Logger:     logger,
	})

	// Загрузка файла предшествует запуску: flow с отсутствующим файлом
	// молча деградирует на стороне сервиса, поэтому ошибка загрузки фатальна.
	if opts.UploadFile != "" {
		file, err := client.UploadFile(ctx, cfg.Endpoint, opts.UploadFile)
		if err != nil {
			return err
		}

		var overwritten []string
		tweaks, overwritten = langflow.AttachFile(tweaks, file, components)
		for _, id := range overwritten {
			logger.Debug("file reference replaced a user-supplied tweak",
				"component", id, "key", langflow.TweakPathKey)
		}
	}

	req := langflow.NewRunRequest(message, opts.InputType, opts.OutputType, opts.SessionID, tweaks)

	raw, err := client.Run(ctx, cfg.Endpoint, req)
	if err != nil {
		return err
	}

	out.PrintResponse(raw, opts.Raw)

	// Сохранение — best-effort: неудача не меняет код выхода,
	// ответ уже доставлен оператору.
	if opts.SaveOutput != "" {
		if err := out.Save(opts.SaveOutput, raw); err != nil {
			out.Warn(fmt.Sprintf("failed to save output: %v", err))
		} else {
			out.Success("Output saved to " + opts.SaveOutput)
		}
	}

	return nil
}

// splitComponents разбирает список ID компонентов через запятую,
// отбрасывая пустые элементы.
func splitComponents(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
