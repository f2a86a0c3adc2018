package services

// ServiceContainer - контейнер со всеми сервисами приложения
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	InternshipService  InternshipService
	ApplicationService ApplicationService
}
