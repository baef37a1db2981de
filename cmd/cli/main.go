package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ymatsuda/gl-console/internal/config"
	"github.com/ymatsuda/gl-console/pkg/clients/rtdbclient"
	"github.com/ymatsuda/gl-console/pkg/core/model"
	"github.com/ymatsuda/gl-console/pkg/core/services"
	"github.com/ymatsuda/gl-console/pkg/core/teamconfig"
	"github.com/ymatsuda/gl-console/pkg/db"
	"github.com/ymatsuda/gl-console/pkg/postgres"
	"github.com/ymatsuda/gl-console/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg      *config.Config
	rtdb     *rtdbclient.Client
	database db.AuditStore
	logger   *zap.Logger
	ctx      context.Context
}

var (
	env string
	app *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "GL Console CLI - Manage event GL assignments",
		Long:  `A CLI tool for managing GL applications, team configuration and per-schedule assignments for event staffing.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(listApplicationsCmd())
	rootCmd.AddCommand(viewBoardCmd())
	rootCmd.AddCommand(setAssignmentCmd())
	rootCmd.AddCommand(viewOptionsCmd())
	rootCmd.AddCommand(setTeamsCmd())
	rootCmd.AddCommand(setDefaultTeamsCmd())
	rootCmd.AddCommand(defineSchedulesCmd())
	rootCmd.AddCommand(addStaffCmd())
	rootCmd.AddCommand(viewResponsesCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(interactiveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, the database client and the optional audit
// store
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	app.logger.Info("Loading configuration")
	app.cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	app.logger.Info("Connecting to Realtime Database", zap.String("database_url", app.cfg.DatabaseURL))
	app.rtdb, err = rtdbclient.NewClient(app.ctx, app.cfg)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	app.logger.Debug("Database client initialized successfully")

	// The audit trail is optional; without a Postgres DSN assignment writes
	// simply aren't mirrored locally.
	if app.cfg.PostgresURL != "" {
		app.logger.Info("Connecting to audit database")
		auditDB, err := postgres.NewDB(app.ctx, app.cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("failed to connect to audit database: %w", err)
		}
		if err := auditDB.RunMigrations(app.ctx); err != nil {
			return fmt.Errorf("failed to run audit database migrations: %w", err)
		}
		app.database = auditDB
		app.logger.Info("Audit database initialized successfully")
	} else {
		app.logger.Warn("No postgresURL configured, assignment changes will not be audited")
	}

	return nil
}

// Command definitions

func listApplicationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listApplications",
		Short: "List all GL applications for the configured event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.logger.Info("listApplications command")

			applications, err := app.rtdb.ListApplications(app.ctx, app.cfg.EventID)
			if err != nil {
				return fmt.Errorf("failed to list applications: %w", err)
			}

			fmt.Printf("\nFound %d applications:\n\n", len(applications))
			for _, a := range applications {
				sourceInfo := ""
				if a.Role != "" {
					sourceInfo = fmt.Sprintf(" [%s]", a.Role)
				}
				fmt.Printf("- %s (%s) - %s%s\n", a.Name, a.ID, a.SourceType, sourceInfo)
			}

			return nil
		},
	}
}

func viewBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewBoard <schedule_id>",
		Short: "View the assignment board for a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduleID := args[0]
			filter, _ := cmd.Flags().GetString("filter")

			app.logger.Info("viewBoard command",
				zap.String("schedule_id", scheduleID),
				zap.String("filter", filter))

			result, err := services.BuildAssignmentBoard(app.ctx, app.rtdb, app.logger, app.cfg.EventID, scheduleID, filter)
			if err != nil {
				return err
			}

			fmt.Printf("\nAssignment board for schedule %s (%d applicants)\n", scheduleID, result.Total)
			for _, group := range result.Groups {
				if len(group.Entries) == 0 {
					continue
				}
				fmt.Printf("\n%s (%d)\n", group.Label, len(group.Entries))
				for _, entry := range group.Entries {
					note := ""
					if entry.ResponseText != "" {
						note = fmt.Sprintf(" - %s", entry.ResponseText)
					}
					fmt.Printf("  %s (%s)%s\n", entry.Application.Name, entry.Application.ID, note)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("filter", "all", "Bucket filter: all, unassigned, assigned, absent, staff")

	return cmd
}

func setAssignmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setAssignment <applicant_id> <schedule_id> <value>",
		Short: "Assign an applicant for a schedule (team name, __absent, __staff, __unavailable, or \"\" to clear)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			applicantID, scheduleID, value := args[0], args[1], args[2]

			app.logger.Info("setAssignment command",
				zap.String("applicant_id", applicantID),
				zap.String("schedule_id", scheduleID),
				zap.String("value", value))

			result, err := services.ApplyAssignment(app.ctx, app.rtdb, app.database, app.cfg, app.logger, applicantID, scheduleID, value)
			if err != nil {
				return err
			}

			if result.Record == nil {
				fmt.Printf("\nAssignment cleared for %s on %s\n", applicantID, scheduleID)
			} else {
				fmt.Printf("\nAssignment saved: %s on %s -> %s\n", applicantID, scheduleID, result.Value)
			}

			return nil
		},
	}
}

func viewOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "viewOptions <applicant_id> <schedule_id>",
		Short: "View the assignment options for an applicant on a schedule",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			applicantID, scheduleID := args[0], args[1]

			app.logger.Info("viewOptions command",
				zap.String("applicant_id", applicantID),
				zap.String("schedule_id", scheduleID))

			result, err := services.ViewAssignmentOptions(app.ctx, app.rtdb, app.logger, app.cfg.EventID, applicantID, scheduleID)
			if err != nil {
				return err
			}

			fmt.Printf("\nOptions for %s on %s:\n\n", result.Application.Name, scheduleID)
			for _, option := range result.Options {
				marker := " "
				if option.Value == result.CurrentValue {
					marker = "*"
				}
				value := option.Value
				if value == "" {
					value = "(clear)"
				}
				fmt.Printf("  %s %-20s %s\n", marker, value, option.Label)
			}
			fmt.Println()

			return nil
		},
	}
}

func setTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setTeams <schedule_id>",
		Short: "Set the team configuration for one schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduleID := args[0]
			count, _ := cmd.Flags().GetString("count")
			teams, _ := cmd.Flags().GetStringSlice("teams")
			clear, _ := cmd.Flags().GetBool("clear")

			app.logger.Info("setTeams command",
				zap.String("schedule_id", scheduleID),
				zap.String("count", count),
				zap.Strings("teams", teams),
				zap.Bool("clear", clear))

			cfg, err := services.SaveScheduleTeams(app.ctx, app.rtdb, app.logger, app.cfg.EventID, scheduleID,
				services.TeamOverrideInput{Teams: teams, Count: count, Clear: clear})
			if err != nil {
				return err
			}

			printScheduleTeams(cfg, scheduleID)
			return nil
		},
	}

	cmd.Flags().String("count", "", "Number of sequential teams (0 for no teams)")
	cmd.Flags().StringSlice("teams", nil, "Explicit team names, comma separated")
	cmd.Flags().Bool("clear", false, "Remove the override so the schedule uses the event default")

	return cmd
}

func printScheduleTeams(cfg *model.GLConfig, scheduleID string) {
	teams := teamconfig.GetScheduleTeams(cfg, scheduleID)
	if len(teams) == 0 {
		fmt.Printf("\nSchedule %s has no teams\n", scheduleID)
		return
	}
	fmt.Printf("\nTeams for %s: %s\n", scheduleID, strings.Join(teams, ", "))
}

func setDefaultTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setDefaultTeams",
		Short: "Set the event-wide default team configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetString("count")
			teams, _ := cmd.Flags().GetStringSlice("teams")

			app.logger.Info("setDefaultTeams command",
				zap.String("count", count),
				zap.Strings("teams", teams))

			cfg, err := services.SaveDefaultTeams(app.ctx, app.rtdb, app.logger, app.cfg.EventID,
				services.TeamOverrideInput{Teams: teams, Count: count})
			if err != nil {
				return err
			}

			fmt.Printf("\nDefault teams: %s\n", strings.Join(cfg.DefaultTeams, ", "))
			return nil
		},
	}

	cmd.Flags().String("count", "", "Number of sequential teams (0 for no teams)")
	cmd.Flags().StringSlice("teams", nil, "Explicit team names, comma separated")

	return cmd
}

func defineSchedulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defineSchedules <start_date> <count>",
		Short: "Generate schedule slots from the configured recurrence rules",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("start_date must be YYYY-MM-DD: %w", err)
			}
			count, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("count must be a number: %w", err)
			}

			app.logger.Info("defineSchedules command",
				zap.Time("start", start),
				zap.Int("count", count))

			result, err := services.DefineSchedules(app.ctx, app.rtdb, app.cfg, app.logger, start, count)
			if err != nil {
				return err
			}

			fmt.Printf("\nCreated %d schedules (%d already existed):\n\n", len(result.Created), result.Skipped)
			for _, schedule := range result.Created {
				fmt.Printf("  %s  %s (%s)\n",
					time.UnixMilli(schedule.StartAt).Format("2006-01-02 15:04"),
					schedule.Label,
					schedule.ID)
			}
			fmt.Println()

			return nil
		},
	}
}

func addStaffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addStaff <name>",
		Short: "Register an internal staff applicant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := services.StaffInput{Name: args[0]}
			input.Phonetic, _ = cmd.Flags().GetString("phonetic")
			input.Email, _ = cmd.Flags().GetString("email")
			input.Grade, _ = cmd.Flags().GetString("grade")
			input.Faculty, _ = cmd.Flags().GetString("faculty")
			input.Department, _ = cmd.Flags().GetString("department")
			input.Role, _ = cmd.Flags().GetString("role")

			app.logger.Info("addStaff command", zap.String("name", input.Name))

			staff, err := services.RegisterStaffApplication(app.ctx, app.rtdb, app.logger, app.cfg.EventID, input)
			if err != nil {
				return err
			}

			fmt.Printf("\nStaff registered: %s (%s) role=%s\n", staff.Name, staff.ID, staff.Role)
			return nil
		},
	}

	cmd.Flags().String("phonetic", "", "Phonetic reading of the name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("grade", "", "Grade")
	cmd.Flags().String("faculty", "", "Faculty")
	cmd.Flags().String("department", "", "Department")
	cmd.Flags().String("role", "", "Staff role (defaults to GL)")

	return cmd
}

func viewResponsesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "viewResponses <schedule_id>",
		Short: "View shift responses for a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduleID := args[0]

			app.logger.Info("viewResponses command", zap.String("schedule_id", scheduleID))

			result, err := services.ViewScheduleResponses(app.ctx, app.rtdb, app.logger, app.cfg.EventID, scheduleID)
			if err != nil {
				return err
			}

			fmt.Printf("\nResponses for schedule %s (%d/%d available):\n\n",
				scheduleID, result.AvailableCount, len(result.Responses))
			for _, response := range result.Responses {
				marker := "x"
				if response.Available {
					marker = "o"
				}
				text := response.ResponseText
				if text == "" {
					text = "-"
				}
				fmt.Printf("  [%s] %-20s %s\n", marker, response.Application.Name, text)
			}
			fmt.Println()

			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "View the assignment change audit trail for the configured event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.database == nil {
				return fmt.Errorf("no postgresURL configured, audit trail is unavailable")
			}

			app.logger.Info("history command")

			changes, err := app.database.GetAssignmentChanges(app.ctx, app.cfg.EventID)
			if err != nil {
				return fmt.Errorf("failed to fetch assignment changes: %w", err)
			}

			fmt.Printf("\n%d assignment changes:\n\n", len(changes))
			for _, change := range changes {
				action := change.Status
				if change.TeamID != "" {
					action = change.TeamID
				}
				if change.Deleted {
					action = "(cleared)"
				}
				fmt.Printf("  %s  %s/%s -> %s by %s\n",
					change.ChangedAt.Format("2006-01-02 15:04:05"),
					change.ApplicantID,
					change.ScheduleID,
					action,
					change.ChangedByUID)
			}
			fmt.Println()

			return nil
		},
	}
}

func interactiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (authenticate once, run multiple commands)",
		Long: `Start an interactive session where you can run multiple commands without re-authenticating.
The session will keep running until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\nStarting interactive session...")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			rootCmd := cmd.Parent()
			commands := make(map[string]*cobra.Command)
			for _, subCmd := range rootCmd.Commands() {
				if subCmd.Name() != "interactive" && subCmd.Name() != "completion" && subCmd.Name() != "help" {
					commands[subCmd.Name()] = subCmd
				}
			}

			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Print("> ")

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				parts := strings.Fields(line)
				cmdName := parts[0]
				cmdArgs := parts[1:]

				if cmdName == "exit" || cmdName == "quit" {
					fmt.Println("Goodbye!")
					return nil
				}

				if cmdName == "help" {
					printInteractiveHelp(commands)
					continue
				}

				targetCmd, exists := commands[cmdName]
				if !exists {
					fmt.Printf("Unknown command: %s (type 'help' for available commands)\n\n", cmdName)
					continue
				}

				// Reset command flags and args
				targetCmd.Flags().VisitAll(func(flag *pflag.Flag) {
					flag.Changed = false
					flag.Value.Set(flag.DefValue)
				})

				// Execute the command's RunE directly, bypassing the full
				// Execute() flow so PersistentPreRunE doesn't re-run initApp
				if err := targetCmd.ParseFlags(cmdArgs); err != nil {
					fmt.Printf("Error parsing flags: %v\n\n", err)
					continue
				}

				cmdArgs = targetCmd.Flags().Args()

				if err := targetCmd.Args(targetCmd, cmdArgs); err != nil {
					fmt.Printf("Error: %v\n\n", err)
					continue
				}

				if targetCmd.RunE != nil {
					if err := targetCmd.RunE(targetCmd, cmdArgs); err != nil {
						fmt.Printf("Error: %v\n\n", err)
					}
				} else if targetCmd.Run != nil {
					targetCmd.Run(targetCmd, cmdArgs)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			return nil
		},
	}

	return cmd
}

func sortedCommandNames(commands map[string]*cobra.Command) []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printInteractiveHelp(commands map[string]*cobra.Command) {
	fmt.Println("\nAvailable commands:")

	for _, name := range sortedCommandNames(commands) {
		cmd := commands[name]
		fmt.Printf("  %-30s %s\n", cmd.Use, cmd.Short)
	}

	fmt.Println("\n  help                           Show this help message")
	fmt.Println("  exit, quit                     Exit the interactive session")
}
