package draft

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"resumeforge/internal/app/client"
)

var (
	previewVariant string
	previewOutput  string
	exportVariant  string
	exportOutput   string
)

var PreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "HTML предпросмотр черновика",
	Long: `Рендерит текущий черновик в HTML и сохраняет в файл.

Доступные макеты: modern, classic, minimalist.
Значение '-' у флага -o выводит HTML в стандартный вывод.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		variant := previewVariant
		if variant == "" {
			variant = app.Config().Variant
		}

		html, err := app.Preview(cmd.Context(), variant)
		if err != nil {
			return fmt.Errorf("ошибка предпросмотра: %w", err)
		}

		if previewOutput == "-" {
			_, err = os.Stdout.Write(html)
			return err
		}

		if err := os.WriteFile(previewOutput, html, 0644); err != nil {
			return fmt.Errorf("ошибка записи файла: %w", err)
		}

		color.Green("✅ Предпросмотр сохранен: %s", previewOutput)
		return nil
	},
}

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Экспортировать черновик в PDF",
	Long: `Конвертирует текущий черновик в PDF на сервере и сохраняет файл.

Если имя файла не задано флагом -o, используется имя, производное от
имени владельца резюме, например Jane_Doe_resume.pdf.

Экспорт откажет, если не заполнены обязательные поля. Проверить их
заранее можно командой: resumeforge draft check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		variant := exportVariant
		if variant == "" {
			variant = app.Config().Variant
		}

		fmt.Println("Экспорт черновика...")

		filename, data, err := app.Export(cmd.Context(), variant)
		if err != nil {
			return fmt.Errorf("ошибка экспорта: %w", err)
		}

		outPath := exportOutput
		if outPath == "" {
			outPath = filename
		}

		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("ошибка записи файла: %w", err)
		}

		color.Green("✅ Резюме сохранено: %s (%d байт)", outPath, len(data))
		return nil
	},
}

func init() {
	PreviewCmd.Flags().StringVarP(&previewVariant, "variant", "v", "", "макет (modern, classic, minimalist)")
	PreviewCmd.Flags().StringVarP(&previewOutput, "output", "o", "resume.html", "файл для сохранения HTML")

	ExportCmd.Flags().StringVarP(&exportVariant, "variant", "v", "", "макет (modern, classic, minimalist)")
	ExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "файл для сохранения PDF")
}
