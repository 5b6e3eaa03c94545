package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopdesk/shopdesk/config"
	"github.com/shopdesk/shopdesk/database"
	"github.com/shopdesk/shopdesk/logger"
	"github.com/shopdesk/shopdesk/web"
	"github.com/shopdesk/shopdesk/web/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	level, err := logger.ParseLevel(config.GetLogLevel())
	if err != nil {
		log.Fatal(err)
	}
	logger.InitLogger(level)
	defer logger.CloseLogger()

	err = database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(); err != nil {
			logger.Warning("close database err:", err)
		}
	}()

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		logger.Error(err)
		return
	}
	logger.Noticef("%s %s started", config.GetName(), config.GetVersion())

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			logger.Notice("Received SIGHUP, restarting web server...")
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				logger.Error(err)
				return
			}
		default:
			logger.Infof("Received %v, shutting down...", sig)
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func migrateDb() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDB()
	version, err := database.SchemaVersion()
	if err != nil {
		log.Fatal(err)
	}
	color.Green("Migration done! Schema version: %d", version)
}

func showSetting(ctx context.Context) {
	key := color.New(color.FgCyan).SprintFunc()

	fmt.Println("current settings as follows:")
	fmt.Println(key("listen:"), config.GetListen())
	fmt.Println(key("port:"), config.GetPort())
	fmt.Println(key("db:"), config.GetDBPath())

	file, err := os.Open(config.GetDBPath())
	if err != nil {
		color.Yellow("database not initialized: %v", err)
		return
	}
	isDB, err := database.IsSQLiteDB(file)
	file.Close()
	if err != nil || !isDB {
		color.Red("db file is not a SQLite database")
		return
	}

	err = database.InitDB(config.GetDBPath())
	if err != nil {
		color.Red("%v", err)
		return
	}
	defer database.CloseDB()

	userService := service.UserService{}
	user, err := userService.GetFirstUser(ctx)
	if err != nil {
		color.Red("get current user info failed, error info: %v", err)
		return
	}
	fmt.Println(key("username:"), user.Username)
}

func main() {
	config.LoadEnv()

	var rootCmd = &cobra.Command{
		Use:   config.GetName(),
		Short: "Store administration web app",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and the default admin account",
		Run: func(cmd *cobra.Command, args []string) {
			migrateDb()
		},
	}

	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Inspect settings",
	}

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Run: func(cmd *cobra.Command, args []string) {
			showSetting(cmd.Context())
		},
	}

	settingCmd.AddCommand(showCmd)
	rootCmd.AddCommand(runCmd, migrateCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
