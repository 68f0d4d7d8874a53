package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"portfolio/internal/domain/models"
	"portfolio/internal/view"
)

func listCmd() *cobra.Command {
	var (
		search string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects with optional search and paging",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := view.NewListStore(collection())
			store.Load(cmd.Context())
			store.SetSearch(search)
			store.SetPage(page)

			snap := store.Snapshot()
			if snap.Phase == view.PhaseFailed {
				return fmt.Errorf("%s", snap.Err)
			}

			if snap.FilteredCount == 0 {
				fmt.Println("No projects found matching current filter.")
				return nil
			}

			for _, p := range snap.Items {
				fmt.Printf("%s  %s\n", p.ID, p.Title)
				if techs := p.Technologies(); len(techs) > 0 {
					fmt.Printf("    [%s]\n", strings.Join(techs, "] ["))
				}
			}
			if snap.ShowPagination {
				fmt.Printf("Page %d of %d (%d projects)\n", snap.Page, snap.TotalPages, snap.FilteredCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by title or tech stack substring")
	cmd.Flags().IntVar(&page, "page", 1, "Page to display")

	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a project's full details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := view.NewDetailStore(collection(), nil)
			store.Load(cmd.Context(), args[0])

			snap := store.Snapshot()
			if snap.Phase == view.PhaseFailed {
				return fmt.Errorf("%s", snap.Err)
			}
			if snap.NotFound {
				return fmt.Errorf("project not found")
			}

			p := snap.Project
			fmt.Printf("%s\n", p.Title)
			if p.Description != "" {
				fmt.Printf("\n%s\n", p.Description)
			} else {
				fmt.Println("\nNo description provided")
			}
			if techs := p.Technologies(); len(techs) > 0 {
				fmt.Printf("\nTechnologies: [%s]\n", strings.Join(techs, "] ["))
			}
			if p.GithubURL != "" {
				fmt.Printf("GitHub:    %s\n", p.GithubURL)
			}
			if p.LiveDemoURL != "" {
				fmt.Printf("Live demo: %s\n", p.LiveDemoURL)
			}
			return nil
		},
	}
}

// draftFlags registers the shared create/edit field flags on cmd.
func draftFlags(cmd *cobra.Command, draft *models.ProjectDraft) {
	cmd.Flags().StringVar(&draft.Title, "title", "", "Project title (required)")
	cmd.Flags().StringVar(&draft.Description, "description", "", "Project description")
	cmd.Flags().StringVar(&draft.TechStack, "tech", "", "Comma-separated tech stack")
	cmd.Flags().StringVar(&draft.GithubURL, "github", "", "GitHub repository URL")
	cmd.Flags().StringVar(&draft.LiveDemoURL, "demo", "", "Live demo URL")
}

// reportFieldErrors prints field-scoped validation messages.
func reportFieldErrors(snap view.FormSnapshot) error {
	for field, msg := range snap.FieldErrors {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
	}
	return fmt.Errorf("validation failed")
}

func createCmd() *cobra.Command {
	var draft models.ProjectDraft

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := view.NewCreateForm(collection(), printNavigator{}, view.FormOptions{})
			form.SetTitle(draft.Title)
			form.SetDescription(draft.Description)
			form.SetTechStack(draft.TechStack)
			form.SetGithubURL(draft.GithubURL)
			form.SetLiveDemoURL(draft.LiveDemoURL)

			if err := form.Submit(cmd.Context()); err != nil {
				snap := form.Snapshot()
				if len(snap.FieldErrors) > 0 {
					return reportFieldErrors(snap)
				}
				return fmt.Errorf("%s", snap.SubmitErr)
			}
			fmt.Println("Project created.")
			return nil
		},
	}

	draftFlags(cmd, &draft)

	return cmd
}

func editCmd() *cobra.Command {
	var draft models.ProjectDraft

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := view.NewEditForm(collection(), printNavigator{}, args[0], view.FormOptions{})
			form.Load(cmd.Context())

			snap := form.Snapshot()
			if snap.LoadErr != "" {
				return fmt.Errorf("%s", snap.LoadErr)
			}

			// Only flags that were set override the loaded record, so
			// an edit with no flags is a no-op update.
			if cmd.Flags().Changed("title") {
				form.SetTitle(draft.Title)
			}
			if cmd.Flags().Changed("description") {
				form.SetDescription(draft.Description)
			}
			if cmd.Flags().Changed("tech") {
				form.SetTechStack(draft.TechStack)
			}
			if cmd.Flags().Changed("github") {
				form.SetGithubURL(draft.GithubURL)
			}
			if cmd.Flags().Changed("demo") {
				form.SetLiveDemoURL(draft.LiveDemoURL)
			}

			if err := form.Submit(cmd.Context()); err != nil {
				snap := form.Snapshot()
				if len(snap.FieldErrors) > 0 {
					return reportFieldErrors(snap)
				}
				return fmt.Errorf("%s", snap.SubmitErr)
			}
			fmt.Println("Project updated.")
			return nil
		},
	}

	draftFlags(cmd, &draft)

	return cmd
}

func deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := view.NewDetailStore(collection(), printNavigator{})
			store.Load(cmd.Context(), args[0])

			snap := store.Snapshot()
			if snap.Phase == view.PhaseFailed {
				return fmt.Errorf("%s", snap.Err)
			}
			if snap.NotFound {
				return fmt.Errorf("project not found")
			}

			confirm := func(p models.Project) bool {
				if yes {
					return true
				}
				fmt.Printf("Are you sure you want to delete %q? [y/N] ", p.Title)
				line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
				answer := strings.ToLower(strings.TrimSpace(line))
				return answer == "y" || answer == "yes"
			}

			if err := store.Delete(cmd.Context(), confirm); err != nil {
				return fmt.Errorf("%s", store.Snapshot().Err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
