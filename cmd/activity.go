package cmd

import (
	"context"
	"fmt"

	"worksheet-docs/activity"
	"worksheet-docs/config"

	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity <definition.yaml>",
	Short: "Create an inquiry activity from the shared template",
	Long: `Copy the inquiry activity template into the activity folder and fill in
its placeholders. The template is created on first use.`,
	Args: cobra.ExactArgs(1),
	RunE: runActivity,
}

func runActivity(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	act, err := config.LoadActivity(args[0])
	if err != nil {
		return err
	}

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	open := func(id string) activity.Editor { return s.document(id) }
	generator := activity.NewGenerator(s.store, open, activity.Settings{
		FolderName:     cfg.FolderName,
		ActivityFolder: cfg.ActivityFolder,
		TemplateName:   cfg.TemplateName,
	}, logger)

	ref, err := generator.Generate(ctx, act)
	if err != nil {
		return fmt.Errorf("Failed to generate activity: %w", err)
	}

	fmt.Printf("%s %s\n", success("Activity"), ref.ID)
	fmt.Println(s.document(ref.ID).URL())
	return nil
}
