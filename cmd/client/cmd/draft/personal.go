package draft

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"resumeforge/internal/app/client"
)

var SetCmd = &cobra.Command{
	Use:   "set <поле> <значение>",
	Short: "Обновить контактное поле",
	Long: `Обновляет одно контактное поле текущего черновика.

Поддерживаемые поля: name, email, phone, address.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		field := args[0]
		value := strings.Join(args[1:], " ")

		if _, err := app.SetPersonal(cmd.Context(), field, value); err != nil {
			return fmt.Errorf("ошибка обновления поля: %w", err)
		}

		color.Green("✅ Поле '%s' обновлено", field)
		return nil
	},
}

var SkillsCmd = &cobra.Command{
	Use:   "skills <текст>",
	Short: "Заменить блок навыков",
	Long: `Заменяет навыки целиком одной строкой.
По соглашению навыки перечисляются через запятую.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		skills := strings.Join(args, " ")

		if _, err := app.SetSkills(cmd.Context(), skills); err != nil {
			return fmt.Errorf("ошибка обновления навыков: %w", err)
		}

		color.Green("✅ Навыки обновлены")
		return nil
	},
}

var PhotoCmd = &cobra.Command{
	Use:   "photo <путь к файлу>",
	Short: "Заменить фотографию",
	Long: `Загружает изображение из файла как фотографию резюме.
Тип изображения определяется по содержимому файла.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if _, err := app.SetPhoto(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка загрузки фотографии: %w", err)
		}

		color.Green("✅ Фотография обновлена")
		return nil
	},
}
