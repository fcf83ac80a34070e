package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/pontocerto/ponto-backend-go/internal/domain/auth"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(db *database.DB, employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by username: %w", err)
	}

	if emp.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	// A blank role means a regular employee.
	role := emp.Role
	if role == "" {
		role = employee.RoleFuncionario
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(emp.ID, emp.Username, emp.Name, role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: auth.UserInfo{
			ID:       emp.ID,
			Name:     emp.Name,
			Username: emp.Username,
			Role:     string(role),
		},
	}, nil
}
