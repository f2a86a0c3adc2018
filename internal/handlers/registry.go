package handlers

// AppHandlers - контейнер со всеми HTTP-обработчиками
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	InternshipHandler  *InternshipHandler
	ApplicationHandler *ApplicationHandler
}
