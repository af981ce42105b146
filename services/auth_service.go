// Package services file: services/auth_service.go
package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"go-ultimate-hub/logger"
	"go-ultimate-hub/models"
)

// CurrentUserKey is the client storage key holding the serialized current user.
const CurrentUserKey = "currentUser"

// ClientStorage is the per-client key/value store the current user persists in.
// A gin-contrib/sessions Session satisfies it directly.
type ClientStorage interface {
	Get(key interface{}) interface{}
	Set(key interface{}, val interface{})
	Delete(key interface{})
	Save() error
}

// AuthServiceInterface allows mocking in controller tests.
type AuthServiceInterface interface {
	Login(storage ClientStorage, role models.Role) (models.User, error)
	LoginFromRegistration(storage ClientStorage, user models.User) error
	Logout(storage ClientStorage) error
	Current(storage ClientStorage) (models.User, bool)
	RegisterParticipant(storage ClientStorage, in ParticipantInput) (models.User, error)
	RegisterOrganizer(storage ClientStorage, in OrganizerInput) (models.User, error)
	RegisterCoach(storage ClientStorage, in CoachInput) (models.User, error)
}

// AuthService picks the current user by role. There are no credentials; whoever selects a
// role becomes the first seed user holding it.
type AuthService struct {
	store *AppStore
}

// Ensure AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// NewAuthService builds an AuthService over store.
func NewAuthService(store *AppStore) *AuthService {
	return &AuthService{store: store}
}

// Login makes the first user with role current.
func (a *AuthService) Login(storage ClientStorage, role models.Role) (models.User, error) {
	if _, err := models.ParseRole(string(role)); err != nil {
		logger.Warn.Printf("[Login] Rejected role %q", role)
		return models.User{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	user, err := a.store.FirstUserWithRole(role)
	if err != nil {
		logger.Warn.Printf("[Login] No seed user for role %s", role)
		return models.User{}, err
	}

	if err := persistUser(storage, user); err != nil {
		return models.User{}, err
	}
	logger.Info.Printf("[Login] %s logged in as %s (%s)", user.ID, user.Name, role)
	return user, nil
}

// LoginFromRegistration makes an arbitrary freshly registered user current.
func (a *AuthService) LoginFromRegistration(storage ClientStorage, user models.User) error {
	if err := persistUser(storage, user); err != nil {
		return err
	}
	logger.Info.Printf("[LoginFromRegistration] %s logged in after registering as %s", user.ID, user.Role())
	return nil
}

// Logout clears the current user.
func (a *AuthService) Logout(storage ClientStorage) error {
	storage.Delete(CurrentUserKey)
	if err := storage.Save(); err != nil {
		logger.Error.Printf("[Logout] Failed to save client storage: %v", err)
		return err
	}
	logger.Info.Println("[Logout] Current user cleared")
	return nil
}

// Current rehydrates the current user from storage. Malformed data is dropped without error.
func (a *AuthService) Current(storage ClientStorage) (models.User, bool) {
	raw, ok := storage.Get(CurrentUserKey).(string)
	if !ok || raw == "" {
		return models.User{}, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
		logger.Debug.Printf("[Current] Discarding malformed stored user: %v", err)
		storage.Delete(CurrentUserKey)
		_ = storage.Save()
		return models.User{}, false
	}
	return user, true
}

// RegisterParticipant creates a participant and logs them in.
func (a *AuthService) RegisterParticipant(storage ClientStorage, in ParticipantInput) (models.User, error) {
	if err := requireNameEmail(in.Name, in.Email); err != nil {
		return models.User{}, err
	}
	user, err := a.store.AddParticipant(in)
	if err != nil {
		return models.User{}, err
	}
	return user, a.LoginFromRegistration(storage, user)
}

// RegisterOrganizer creates an organizer and logs them in.
func (a *AuthService) RegisterOrganizer(storage ClientStorage, in OrganizerInput) (models.User, error) {
	if err := requireNameEmail(in.Name, in.Email); err != nil {
		return models.User{}, err
	}
	if strings.TrimSpace(in.OrgName) == "" {
		return models.User{}, fmt.Errorf("%w: organization name is required", ErrInvalidInput)
	}
	user, err := a.store.AddOrganizer(in)
	if err != nil {
		return models.User{}, err
	}
	return user, a.LoginFromRegistration(storage, user)
}

// RegisterCoach creates a coach and logs them in.
func (a *AuthService) RegisterCoach(storage ClientStorage, in CoachInput) (models.User, error) {
	if err := requireNameEmail(in.Name, in.Email); err != nil {
		return models.User{}, err
	}
	user, err := a.store.AddCoach(in)
	if err != nil {
		return models.User{}, err
	}
	return user, a.LoginFromRegistration(storage, user)
}

func persistUser(storage ClientStorage, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode current user: %w", err)
	}
	storage.Set(CurrentUserKey, string(raw))
	if err := storage.Save(); err != nil {
		logger.Error.Printf("[persistUser] Failed to save client storage: %v", err)
		return err
	}
	return nil
}

func requireNameEmail(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	return nil
}
