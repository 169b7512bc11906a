package users_services

import (
	"errors"
	"fmt"
	"strings"

	users_interfaces "lessonbook/internal/features/users/interfaces"
	users_models "lessonbook/internal/features/users/models"
	users_repositories "lessonbook/internal/features/users/repositories"
	cache_utils "lessonbook/internal/util/cache"
)

const allowedDomainsCacheKey = "allowed_email_domains"

type SettingsService struct {
	settingsRepository *users_repositories.UsersSettingsRepository
	domainsCache       *cache_utils.CacheUtil[[]string]
	auditLogWriter     users_interfaces.AuditLogWriter
}

func (s *SettingsService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *SettingsService) GetSettings() (*users_models.UsersSettings, error) {
	return s.settingsRepository.GetSettings()
}

func (s *SettingsService) UpdateSettings(
	settings *users_models.UsersSettings,
	updatedBy *users_models.User,
) (*users_models.UsersSettings, error) {
	if !updatedBy.CanUpdateSettings() {
		return nil, errors.New("insufficient permissions to update settings")
	}

	if err := s.settingsRepository.UpdateSettings(settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	updated, err := s.settingsRepository.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	s.InvalidateDomainsCache()

	s.auditLogWriter.WriteAuditLog(
		"Member settings updated",
		&updatedBy.ID,
		nil,
	)

	return updated, nil
}

func (s *SettingsService) InvalidateDomainsCache() {
	s.domainsCache.Invalidate(allowedDomainsCacheKey)
}

// GetAllowedEmailDomains returns the configured domain allow-list.
// An empty list means any domain is accepted.
func (s *SettingsService) GetAllowedEmailDomains() ([]string, error) {
	if cached := s.domainsCache.Get(allowedDomainsCacheKey); cached != nil {
		return *cached, nil
	}

	settings, err := s.settingsRepository.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	domains := settings.AllowedEmailDomains()
	s.domainsCache.Set(allowedDomainsCacheKey, &domains)

	return domains, nil
}

func (s *SettingsService) ValidateEmailDomain(email string) error {
	domains, err := s.GetAllowedEmailDomains()
	if err != nil {
		return err
	}

	if len(domains) == 0 {
		return nil
	}

	atIndex := strings.LastIndex(email, "@")
	if atIndex < 0 {
		return errors.New("email domain is not allowed for registration")
	}

	emailDomain := strings.ToLower(email[atIndex+1:])
	for _, domain := range domains {
		if emailDomain == domain {
			return nil
		}
	}

	return errors.New("email domain is not allowed for registration")
}
