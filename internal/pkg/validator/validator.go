package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	api "github.com/s21platform/echo-service/internal/generated"
)

const (
	minPasswordLength = 6
	maxTitleLength    = 100
	maxEchoLength     = 500
	maxTagLength      = 32
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateRegister(req *api.RegisterRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}

	return validatePassword(req.Password)
}

func (v *Validator) ValidateLogin(req *api.LoginRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("username is required")
	}

	if req.Password == "" {
		return fmt.Errorf("password is required")
	}

	return nil
}

func (v *Validator) ValidateChangePassword(req *api.ChangePasswordRequest) error {
	if req.OldPassword == "" {
		return fmt.Errorf("old_password is required")
	}

	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	if req.OldPassword == req.NewPassword {
		return fmt.Errorf("new password must differ from the old one")
	}

	return nil
}

func (v *Validator) ValidateForgotPassword(req *api.ForgotPasswordRequest) error {
	return validateEmail(req.Email)
}

func (v *Validator) ValidateCreateCapsule(req *api.CreateCapsuleRequest) error {
	if err := validateTitle(req.Title); err != nil {
		return err
	}

	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	return nil
}

func (v *Validator) ValidateUpdateCapsule(req *api.UpdateCapsuleRequest) error {
	if req.Title == nil && req.Content == nil && req.UnlockDate == nil && req.UnlockCondition == nil && req.IsPublic == nil {
		return fmt.Errorf("nothing to update")
	}

	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return err
		}
	}

	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	return nil
}

func (v *Validator) ValidateCreateEcho(req *api.CreateEchoRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(req.Content)) > maxEchoLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxEchoLength)
	}

	// A blank tag is allowed; the echo is then classified from its content.
	if req.EmotionTag != nil && len([]rune(strings.TrimSpace(*req.EmotionTag))) > maxTagLength {
		return fmt.Errorf("emotion_tag exceeds maximum length of %d characters", maxTagLength)
	}

	return nil
}

func (v *Validator) ValidateManualMatch(req *api.ManualMatchRequest) error {
	if req.EchoId == uuid.Nil || req.MatchedEchoId == uuid.Nil {
		return fmt.Errorf("echo_id and matched_echo_id are required")
	}

	if req.EchoId == req.MatchedEchoId {
		return fmt.Errorf("an echo cannot be matched with itself")
	}

	return nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

func validatePassword(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if len([]rune(title)) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}

	return nil
}
