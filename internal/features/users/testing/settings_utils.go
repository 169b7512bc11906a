package users_testing

import (
	users_models "lessonbook/internal/features/users/models"
	users_repositories "lessonbook/internal/features/users/repositories"
	users_services "lessonbook/internal/features/users/services"
)

func EnableMemberInvitations() {
	updateUsersSettings(func(s *users_models.UsersSettings) { s.IsAllowMemberInvitations = true })
}

func DisableMemberInvitations() {
	updateUsersSettings(func(s *users_models.UsersSettings) { s.IsAllowMemberInvitations = false })
}

func EnableExternalRegistrations() {
	updateUsersSettings(func(s *users_models.UsersSettings) { s.IsAllowExternalRegistrations = true })
}

func DisableExternalRegistrations() {
	updateUsersSettings(func(s *users_models.UsersSettings) { s.IsAllowExternalRegistrations = false })
}

func EnableMemberProjectCreation() {
	updateUsersSettings(func(s *users_models.UsersSettings) { s.IsMemberAllowedToCreateProjects = true })
}

func DisableMemberProjectCreation() {
	updateUsersSettings(func(s *users_models.UsersSettings) { s.IsMemberAllowedToCreateProjects = false })
}

func SetAllowedEmailDomains(domainsCSV string) {
	updateUsersSettings(func(s *users_models.UsersSettings) { s.AllowedEmailDomainsRaw = domainsCSV })
}

func ResetSettingsToDefaults() {
	updateUsersSettings(func(s *users_models.UsersSettings) {
		s.IsAllowExternalRegistrations = true
		s.IsAllowMemberInvitations = true
		s.IsMemberAllowedToCreateProjects = true
		s.AllowedEmailDomainsRaw = ""
	})
}

func updateUsersSettings(mutate func(*users_models.UsersSettings)) {
	repository := &users_repositories.UsersSettingsRepository{}
	settings, err := repository.GetSettings()
	if err != nil {
		panic(err)
	}

	mutate(settings)

	err = repository.UpdateSettings(settings)
	if err != nil {
		panic(err)
	}

	users_services.GetSettingsService().InvalidateDomainsCache()
}
