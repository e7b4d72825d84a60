package draft

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"resumeforge/internal/app/client"
)

var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Проверить обязательные поля",
	Long: `Проверяет, заполнены ли обязательные поля черновика:
имя, email и телефон. Без них экспорт в PDF невозможен.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		valid, errs, err := app.Validate(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка проверки черновика: %w", err)
		}

		if valid {
			color.Green("✅ Черновик готов к экспорту")
			return nil
		}

		color.Red("Черновик не готов к экспорту:")

		fields := make([]string, 0, len(errs))
		for field := range errs {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		for _, field := range fields {
			fmt.Printf("  %s: %s\n", field, errs[field])
		}

		return nil
	},
}
