package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/config"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/database"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/logger"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/model"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/repository"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	adminRepo := repository.NewAdminRepository(pool)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin User ===")

	// Name
	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// Permissions (comma-separated codes, default: all)
	fmt.Print("Enter Permissions (comma-separated, blank for all): ")
	permsStr, _ := reader.ReadString('\n')
	permsStr = strings.TrimSpace(permsStr)
	var permissions []string
	if permsStr == "" {
		for _, p := range model.AllPermissions {
			permissions = append(permissions, string(p))
		}
	} else {
		for _, p := range strings.Split(permsStr, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				permissions = append(permissions, trimmed)
			}
		}
	}

	// ─── Logic ─────────────────────────────────────────────────────────

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	// Create Admin
	id, err := adminRepo.Create(ctx, name, email, string(hashedPassword), permissions)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	fmt.Printf("\nSuccess! Admin '%s' (%s) created with ID: %d\n", name, email, id)
}
