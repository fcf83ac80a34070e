package main

import (
	"fmt"
	"net/http"

	"github.com/pontocerto/ponto-backend-go/internal/config"
	appHTTP "github.com/pontocerto/ponto-backend-go/internal/handler/http"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/geocode"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontocerto/ponto-backend-go/internal/repository/postgresql"
	authService "github.com/pontocerto/ponto-backend-go/internal/service/auth"
	employeeService "github.com/pontocerto/ponto-backend-go/internal/service/employee"
	markingService "github.com/pontocerto/ponto-backend-go/internal/service/marking"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	markingRepo := postgresql.NewMarkingRepository(db)
	monthlyStatRepo := postgresql.NewMonthlyStatRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	geocoder := geocode.NewHTTPGeocoder(cfg.Marking.GeocodeBaseURL)

	authSvc := authService.NewAuthService(db, employeeRepo, JWTService)
	markingSvc := markingService.NewMarkingService(db, markingRepo, monthlyStatRepo, geocoder, cfg.Marking)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	markingHandler := appHTTP.NewMarkingHandler(markingSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		markingHandler,
		employeeHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
