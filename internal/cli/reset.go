package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"

	"github.com/harsh-kumbhar/lifelog/internal/db"
	"github.com/harsh-kumbhar/lifelog/internal/models"
	"github.com/harsh-kumbhar/lifelog/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunResetPasswordCommand(dbPath string, email string) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	var user models.User
	if err := database.Where("email = ?", normalizedEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	newPassword, generated, err := resolveNewPassword(os.Stdin)
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = generated
	if err := database.Save(&user).Error; err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("✅ Password reset successful")
	if generated {
		fmt.Printf("Temporary password: %s\n", newPassword)
		fmt.Println("User must change password on next login.")
	}

	return nil
}

// resolveNewPassword asks for a password with echo disabled. An empty entry
// or a non-interactive stdin falls back to a generated temporary password
// that must be changed on next login.
func resolveNewPassword(stdin *os.File) (password string, generated bool, err error) {
	fmt.Print("New password (leave empty to generate a temporary one): ")
	entered, promptErr := readPasswordNoEcho(stdin)
	fmt.Println()
	if promptErr == nil {
		trimmed := strings.TrimSpace(string(entered))
		if trimmed != "" {
			if len(trimmed) < 8 {
				return "", false, errors.New("password must be at least 8 characters")
			}
			return trimmed, false, nil
		}
	}

	temporary, genErr := generateTemporaryPassword(12)
	if genErr != nil {
		return "", false, fmt.Errorf("generate temporary password: %w", genErr)
	}
	return temporary, true, nil
}

// readTrimmedLine reads one line from stdin with the trailing newline (and
// any carriage return) removed. EOF before a newline still yields the bytes
// read so far.
func readTrimmedLine(stdin *os.File) ([]byte, error) {
	reader := bufio.NewReader(stdin)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
