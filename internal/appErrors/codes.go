package appErrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeInternshipNotFound  ErrorCode = "INTERNSHIP_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists       ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeAlreadyApplied           ErrorCode = "ALREADY_APPLIED"
	CodeInvalidApplicationStatus ErrorCode = "INVALID_APPLICATION_STATUS"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
