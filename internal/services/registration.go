package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/utils"
)

var (
	emailPattern            = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	verificationCodePattern = regexp.MustCompile(`^\d{6}$`)

	birthDateLayouts = []string{"2006-01-02", "01/02/2006", time.RFC3339}
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
	minPhoneDigits    = 10
)

// validPhone reports whether phone has at least minPhoneDigits digits and
// nothing besides digits, a leading plus and spaces or dashes between groups.
func validPhone(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	return digits >= minPhoneDigits
}

// RegisterInput is the self-service sign-up payload.
type RegisterInput struct {
	Username         string      `json:"username"`
	Password         string      `json:"password"`
	Email            string      `json:"email"`
	Phone            string      `json:"phone"`
	Address          string      `json:"address"`
	Role             models.Role `json:"role"`
	BirthDate        string      `json:"birthDate"`
	VerificationCode string      `json:"verificationCode"`
}

func (in *RegisterInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.BirthDate = strings.TrimSpace(in.BirthDate)
	in.VerificationCode = strings.TrimSpace(in.VerificationCode)
	if in.Role == "" {
		in.Role = models.RoleUser
	}
}

// validateFields checks everything that does not need the database.
func (in *RegisterInput) validateFields() error {
	if in.Username == "" || in.Password == "" || in.Email == "" || in.Phone == "" {
		return utils.Validation("Semua field wajib diisi: username, password, email, no HP")
	}
	if utf8.RuneCountInString(in.Username) < minUsernameLength {
		return utils.Validation("Username minimal 3 karakter")
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		return utils.Validation("Password minimal 6 karakter")
	}
	if !emailPattern.MatchString(in.Email) {
		return utils.Validation("Format email tidak valid. Contoh: user@email.com")
	}
	if !validPhone(in.Phone) {
		return utils.Validation("No HP minimal 10 digit. Contoh: 08123456789")
	}
	if !in.Role.Valid() {
		return utils.Validation("Role tidak valid")
	}
	if in.Role == models.RoleUser && in.Address == "" {
		return utils.Validation("Alamat wajib diisi untuk user")
	}
	return nil
}

// validateAdminCode checks the birth-date derived code required for admins.
func (in *RegisterInput) validateAdminCode() error {
	if in.Role != models.RoleAdmin {
		return nil
	}
	if in.BirthDate == "" || in.VerificationCode == "" {
		return utils.Validation("Data tidak lengkap. Admin harus mengisi tanggal lahir dan kode verifikasi")
	}
	if utf8.RuneCountInString(in.VerificationCode) != 6 {
		return utils.Validation("Kode verifikasi harus 6 digit. Contoh: 150590")
	}
	if !verificationCodePattern.MatchString(in.VerificationCode) {
		return utils.Validation("Kode verifikasi harus berupa 6 digit angka. Contoh: 150590")
	}

	birth, err := ParseBirthDate(in.BirthDate)
	if err != nil {
		return utils.Validation("Format tanggal lahir tidak valid. Pastikan format YYYY-MM-DD atau MM/DD/YYYY")
	}
	if in.VerificationCode != VerificationCode(birth) {
		return utils.Validation("Kode verifikasi salah! Pastikan kode sesuai DDMMYY dari tanggal lahir Anda.")
	}
	return nil
}

// ParseBirthDate accepts ISO dates, US style MM/DD/YYYY and RFC 3339
// timestamps. Only the calendar date as written is kept.
func ParseBirthDate(value string) (time.Time, error) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized birth date %q", value)
}

// VerificationCode is the admin sign-up code for a birth date, as DDMMYY.
func VerificationCode(birth time.Time) string {
	return fmt.Sprintf("%02d%02d%02d", birth.Day(), int(birth.Month()), birth.Year()%100)
}

func duplicateUsernameError(username string) error {
	return utils.Validation(fmt.Sprintf("Username %q sudah digunakan, silakan gunakan username lain", username))
}

func duplicateEmailError(email string) error {
	return utils.Validation(fmt.Sprintf("Email %q sudah digunakan, silakan gunakan email lain", email))
}

func duplicatePhoneError(phone string) error {
	return utils.Validation(fmt.Sprintf("No HP %q sudah digunakan, silakan gunakan no HP lain", phone))
}
