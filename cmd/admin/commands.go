package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chat-assistant/internal/interaction"
	interactionOpts "chat-assistant/internal/interaction/repository"
	interactionRepo "chat-assistant/internal/interaction/repository/postgre"
	"chat-assistant/internal/model"
	"chat-assistant/internal/quota"
	quotaRepo "chat-assistant/internal/quota/repository/postgre"
	quotaUC "chat-assistant/internal/quota/usecase"
	"chat-assistant/pkg/datemath"
	"chat-assistant/pkg/gcalendar"
)

// --- migrate ---

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			// Open already migrates; report what is in place.
			versions, err := e.db.AppliedMigrations(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s schema at version %d (%d migrations applied)\n",
				e.db.Dialect(), lastVersion(versions), len(versions))
			return nil
		},
	}
}

func lastVersion(versions []int) int {
	if len(versions) == 0 {
		return 0
	}
	return versions[len(versions)-1]
}

// --- quota ---

func newQuotaCmd() *cobra.Command {
	var (
		userID string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "quota",
		Short: "Print a user's daily AI usage",
		Example: `  admin quota --user u1
  admin quota --user u1 --limit 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			dm, err := datemath.NewParser(e.cfg.Quota.Timezone)
			if err != nil {
				return err
			}
			uc := quotaUC.New(e.l, quotaRepo.New(e.db, e.l, e.retry()), dm, e.cfg.Quota.DailyLimit)
			sc := model.Scope{UserID: userID}

			today, err := uc.Usage(cmd.Context(), sc)
			if err != nil {
				return err
			}
			history, err := uc.History(cmd.Context(), sc, quota.HistoryInput{Limit: limit})
			if err != nil {
				return err
			}
			printQuota(cmd.OutOrStdout(), today, history.Usages)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id")
	cmd.Flags().IntVar(&limit, "limit", 7, "number of days to show")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

// --- interactions ---

func newInteractionsCmd() *cobra.Command {
	var (
		userID string
		status string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "interactions",
		Short: "List a user's interactions",
		Example: `  admin interactions --user u1
  admin interactions --user u1 --status approved`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := interaction.Status(status)
			if status != "" && !st.IsValid() {
				return fmt.Errorf("unknown status %q", status)
			}

			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			repo := interactionRepo.New(e.db, e.l, e.retry())
			items, err := repo.ListInteractions(cmd.Context(), interactionOpts.ListOptions{
				UserID: userID,
				Status: st,
				Limit:  limit,
			})
			if err != nil {
				return err
			}
			printInteractions(cmd.OutOrStdout(), items)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id")
	cmd.Flags().StringVar(&status, "status", "", "pending | approved | rejected | applied | failed")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

// --- calendar-events ---

func newCalendarEventsCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "calendar-events",
		Short: "List upcoming events in the mirrored Google Calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			gc := e.cfg.GoogleCalendar
			if gc.CredentialsPath == "" {
				return fmt.Errorf("google_calendar.credentials_path is not configured")
			}
			client, err := gcalendar.NewClientFromCredentialsFile(cmd.Context(), gc.CredentialsPath, gc.TokenPath)
			if err != nil {
				return err
			}

			now := time.Now()
			events, err := client.ListEvents(cmd.Context(), gcalendar.ListEventsRequest{
				CalendarID: gc.CalendarID,
				TimeMin:    now,
				TimeMax:    now.AddDate(0, 0, days),
				MaxResults: 100,
			})
			if err != nil {
				return err
			}
			printEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "look-ahead window in days")
	return cmd
}
