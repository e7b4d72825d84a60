// cmd/client/cmd/init.go
package cmd

import (
	"fmt"

	"resumeforge/cmd/client/cmd/draft"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Проверить соединение с сервером",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.CheckConnection(); err != nil {
			return fmt.Errorf("сервер недоступен: %w", err)
		}

		color.Green("✓ Сервер %s отвечает", cfg.ServerAddress)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)

	// Добавляем команды работы с черновиком
	rootCmd.AddCommand(draft.DraftCmd)
	draft.DraftCmd.AddCommand(draft.NewCmd)
	draft.DraftCmd.AddCommand(draft.ShowCmd)
	draft.DraftCmd.AddCommand(draft.DeleteCmd)
	draft.DraftCmd.AddCommand(draft.SetCmd)
	draft.DraftCmd.AddCommand(draft.SkillsCmd)
	draft.DraftCmd.AddCommand(draft.PhotoCmd)
	draft.DraftCmd.AddCommand(draft.CheckCmd)
	draft.DraftCmd.AddCommand(draft.PreviewCmd)
	draft.DraftCmd.AddCommand(draft.ExportCmd)

	// Секции со списочными позициями
	draft.DraftCmd.AddCommand(draft.ExperienceCmd)
	draft.ExperienceCmd.AddCommand(draft.ExperienceAddCmd)
	draft.ExperienceCmd.AddCommand(draft.ExperienceSetCmd)
	draft.ExperienceCmd.AddCommand(draft.ExperienceRemoveCmd)

	draft.DraftCmd.AddCommand(draft.EducationCmd)
	draft.EducationCmd.AddCommand(draft.EducationAddCmd)
	draft.EducationCmd.AddCommand(draft.EducationSetCmd)
	draft.EducationCmd.AddCommand(draft.EducationRemoveCmd)
}
