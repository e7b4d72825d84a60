package draft

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"resumeforge/internal/app/client"
	"resumeforge/internal/domain/resume"
)

// ExperienceCmd - родительская команда для позиций опыта работы
var ExperienceCmd = &cobra.Command{
	Use:     "experience",
	Aliases: []string{"exp"},
	Short:   "Управление позициями опыта работы",
	Long: `Добавление, заполнение и удаление позиций опыта работы.
Позиции адресуются индексом, с нуля.

Поддерживаемые поля: company, position, duration, description.`,
}

// EducationCmd - родительская команда для позиций образования
var EducationCmd = &cobra.Command{
	Use:     "education",
	Aliases: []string{"edu"},
	Short:   "Управление позициями образования",
	Long: `Добавление, заполнение и удаление позиций образования.
Позиции адресуются индексом, с нуля.

Поддерживаемые поля: institution, degree, year.`,
}

var (
	ExperienceAddCmd    = newEntryAddCmd(client.SectionExperience, "опыта работы")
	ExperienceSetCmd    = newEntrySetCmd(client.SectionExperience, "опыта работы")
	ExperienceRemoveCmd = newEntryRemoveCmd(client.SectionExperience, "опыта работы")

	EducationAddCmd    = newEntryAddCmd(client.SectionEducation, "образования")
	EducationSetCmd    = newEntrySetCmd(client.SectionEducation, "образования")
	EducationRemoveCmd = newEntryRemoveCmd(client.SectionEducation, "образования")
)

func newEntryAddCmd(section, label string) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Добавить пустую позицию %s", label),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := client.FromContext(cmd.Context())
			if app == nil {
				return fmt.Errorf("приложение не инициализировано")
			}

			draft, err := app.AppendEntry(cmd.Context(), section)
			if err != nil {
				return fmt.Errorf("ошибка добавления позиции: %w", err)
			}

			index := entryCount(draft, section) - 1
			color.Green("✅ Позиция добавлена, индекс %d", index)
			return nil
		},
	}
}

func newEntrySetCmd(section, label string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <индекс> <поле> <значение>",
		Short: fmt.Sprintf("Обновить поле позиции %s", label),
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := client.FromContext(cmd.Context())
			if app == nil {
				return fmt.Errorf("приложение не инициализировано")
			}

			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("индекс должен быть числом: %s", args[0])
			}

			field := args[1]
			value := strings.Join(args[2:], " ")

			if _, err := app.SetEntry(cmd.Context(), section, index, field, value); err != nil {
				return fmt.Errorf("ошибка обновления позиции: %w", err)
			}

			color.Green("✅ Позиция %d обновлена", index)
			return nil
		},
	}
}

func newEntryRemoveCmd(section, label string) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <индекс>",
		Aliases: []string{"remove"},
		Short:   fmt.Sprintf("Удалить позицию %s", label),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := client.FromContext(cmd.Context())
			if app == nil {
				return fmt.Errorf("приложение не инициализировано")
			}

			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("индекс должен быть числом: %s", args[0])
			}

			if _, err := app.RemoveEntry(cmd.Context(), section, index); err != nil {
				return fmt.Errorf("ошибка удаления позиции: %w", err)
			}

			color.Green("✅ Позиция %d удалена", index)
			return nil
		},
	}
}

func entryCount(draft *resume.Draft, section string) int {
	if section == client.SectionEducation {
		return len(draft.Record.Education)
	}
	return len(draft.Record.Experience)
}
