package main

import (
	"fmt"
	"net/http"

	"github.com/shiftnote/shiftnote-backend-go/internal/config"
	"github.com/shiftnote/shiftnote-backend-go/internal/fixtures"
	appHTTP "github.com/shiftnote/shiftnote-backend-go/internal/handler/http"
	"github.com/shiftnote/shiftnote-backend-go/internal/pkg/database"
	"github.com/shiftnote/shiftnote-backend-go/internal/pkg/jwt"
	"github.com/shiftnote/shiftnote-backend-go/internal/pkg/oauth"
	"github.com/shiftnote/shiftnote-backend-go/internal/repository/postgresql"
	authService "github.com/shiftnote/shiftnote-backend-go/internal/service/auth"
	rosterService "github.com/shiftnote/shiftnote-backend-go/internal/service/roster"
	timesheetService "github.com/shiftnote/shiftnote-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	rosterRepo := fixtures.NewRosterFixtureRepository()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	AuthService := authService.NewAuthService(userRepo, JWTService)
	TimesheetService := timesheetService.NewTimesheetService(shiftRepo, cfg.Timesheet.DeletePolicy, cfg.Timesheet.SaveStrategy)
	RosterService := rosterService.NewRosterService(rosterRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, AuthService, GoogleService, cfg.App.FrontendURL)
	timesheetHandler := appHTTP.NewTimesheetHandler(TimesheetService)
	rosterHandler := appHTTP.NewRosterHandler(RosterService)

	router := appHTTP.NewRouter(JWTService, cfg.App.FrontendURL, authHandler, timesheetHandler, rosterHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
