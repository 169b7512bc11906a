package users_services

import (
	users_repositories "lessonbook/internal/features/users/repositories"
	"lessonbook/internal/cache"
	cache_utils "lessonbook/internal/util/cache"
)

var secretKeyRepository = &users_repositories.SecretKeyRepository{}
var userRepository = &users_repositories.UserRepository{}
var usersSettingsRepository = &users_repositories.UsersSettingsRepository{}

var userService = &UserService{
	userRepository:      userRepository,
	secretKeyRepository: secretKeyRepository,
	settingsService:     settingsService,
}
var settingsService = &SettingsService{
	settingsRepository: usersSettingsRepository,
	domainsCache:       cache_utils.NewCacheUtil[[]string](cache.GetCache(), "users_settings"),
}
var managementService = &UserManagementService{
	userRepository: userRepository,
}

func GetUserService() *UserService {
	return userService
}

func GetSettingsService() *SettingsService {
	return settingsService
}

func GetManagementService() *UserManagementService {
	return managementService
}
