package draft

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"resumeforge/internal/app/client"
	"resumeforge/internal/domain/resume"
)

// DraftCmd - родительская команда для всех операций с черновиком резюме
var DraftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Управление черновиком резюме",
	Long:  `Создание, заполнение, предпросмотр и экспорт черновика резюме.`,
}

var NewCmd = &cobra.Command{
	Use:   "new",
	Short: "Создать новый черновик",
	Long: `Создает на сервере пустой черновик и делает его текущим.
Все остальные команды работают с текущим черновиком.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		draft, err := app.NewDraft(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка создания черновика: %w", err)
		}

		color.Green("✅ Черновик создан")
		fmt.Printf("ID: %s\n", draft.ID)
		fmt.Println()
		fmt.Println("Что дальше:")
		fmt.Println("1. Заполните контакты: resumeforge draft set name \"Jane Doe\"")
		fmt.Println("2. Посмотрите результат: resumeforge draft preview")
		fmt.Println("3. Выгрузите PDF: resumeforge draft export")

		return nil
	},
}

var showJSON bool

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать текущий черновик",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		draft, err := app.GetDraft(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения черновика: %w", err)
		}

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(draft)
		}

		printDraft(draft)
		return nil
	},
}

var DeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Сбросить текущий черновик",
	Long:  `Удаляет черновик на сервере. Данные не восстанавливаются.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if err := app.DeleteDraft(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка удаления черновика: %w", err)
		}

		color.Green("✅ Черновик удален")
		return nil
	},
}

func printDraft(draft *resume.Draft) {
	rec := draft.Record

	fmt.Printf("Черновик %s (обновлен %s)\n\n", draft.ID, draft.UpdatedAt.Format("2006-01-02 15:04"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Имя:\t%s\n", orDash(rec.Personal.Name))
	fmt.Fprintf(w, "Email:\t%s\n", orDash(rec.Personal.Email))
	fmt.Fprintf(w, "Телефон:\t%s\n", orDash(rec.Personal.Phone))
	fmt.Fprintf(w, "Адрес:\t%s\n", orDash(rec.Personal.Address))
	photo := "нет"
	if rec.Photo != "" {
		photo = "есть"
	}
	fmt.Fprintf(w, "Фото:\t%s\n", photo)
	w.Flush()

	fmt.Println("\nОпыт работы:")
	for i, exp := range rec.Experience {
		fmt.Printf("  %d. %s — %s (%s)\n", i, orDash(exp.Company), orDash(exp.Position), orDash(exp.Duration))
		if exp.Description != "" {
			fmt.Printf("     %s\n", exp.Description)
		}
	}

	fmt.Println("\nОбразование:")
	for i, edu := range rec.Education {
		fmt.Printf("  %d. %s — %s (%s)\n", i, orDash(edu.Institution), orDash(edu.Degree), orDash(edu.Year))
	}

	fmt.Printf("\nНавыки: %s\n", orDash(rec.Skills))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func init() {
	ShowCmd.Flags().BoolVar(&showJSON, "json", false, "вывод в формате JSON")
}
