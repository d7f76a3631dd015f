package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/techagentng/dailyreport/config"
	"github.com/techagentng/dailyreport/db"
	"github.com/techagentng/dailyreport/models"
	"github.com/techagentng/dailyreport/services"
)

var (
	employeeCode     string
	employeeName     string
	employeePassword string
	employeeAdmin    bool
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Maintenance tasks for the daily report service",
	Long: `admin runs one-off maintenance against the configured database.
It reads the same DAILYREPORT_* environment as the server.`,
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load()
		if err != nil {
			return err
		}
		gormDB := db.GetDB(conf)
		defer gormDB.Close()
		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
		return nil
	},
}

var createEmployeeCmd = &cobra.Command{
	Use:   "create-employee",
	Short: "Register an employee who can log in",
	Long: `Creates an employee account. Use it to bootstrap the first administrator.

Example:
  admin create-employee --code E001 --name "Jane Doe" --password secret123 --admin`,
	RunE: createEmployee,
}

var purgeSessionsCmd = &cobra.Command{
	Use:   "purge-sessions",
	Short: "Delete expired sessions from the database store",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load()
		if err != nil {
			return err
		}
		gormDB := db.GetDB(conf)
		defer gormDB.Close()

		removed, err := db.NewSessionRepo(gormDB).DeleteExpiredSessions(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired sessions\n", removed)
		return nil
	},
}

func init() {
	createEmployeeCmd.Flags().StringVar(&employeeCode, "code", "", "Employee code used to log in (required)")
	createEmployeeCmd.Flags().StringVar(&employeeName, "name", "", "Display name (required)")
	createEmployeeCmd.Flags().StringVar(&employeePassword, "password", "", "Initial password (required)")
	createEmployeeCmd.Flags().BoolVar(&employeeAdmin, "admin", false, "Grant administrator rights")
	_ = createEmployeeCmd.MarkFlagRequired("code")
	_ = createEmployeeCmd.MarkFlagRequired("name")
	_ = createEmployeeCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(migrateCmd, createEmployeeCmd, purgeSessionsCmd)
}

func createEmployee(cmd *cobra.Command, args []string) error {
	conf, err := config.Load()
	if err != nil {
		return err
	}
	gormDB := db.GetDB(conf)
	defer gormDB.Close()

	employeeService := services.NewEmployeeService(db.NewEmployeeRepo(gormDB, conf.RowPerPage), conf)
	form := &models.EmployeeRequest{
		Code:      employeeCode,
		Name:      employeeName,
		Password:  employeePassword,
		AdminFlag: employeeAdmin,
	}
	employee, messages, err := employeeService.CreateEmployee(cmd.Context(), form)
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return fmt.Errorf("invalid employee: %s", strings.Join(messages, "; "))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created employee %s (id %d, admin=%t)\n", employee.Code, employee.ID, employee.AdminFlag)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
