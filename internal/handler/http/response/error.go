package response

import (
	"errors"
	"net/http"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/auth"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/project"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/user"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. User-facing messages
// are product copy and stay German.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Ungültige Anmeldedaten")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Token ist ungültig")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "Benutzer nicht gefunden")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Benutzername bereits vergeben")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Keine Berechtigung")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Der eigene Account kann nicht gelöscht werden", nil)
	case errors.Is(err, user.ErrInvalidAvatarType):
		BadRequest(w, "Dateityp wird nicht unterstützt", nil)

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Projekt nicht gefunden")
	case errors.Is(err, project.ErrProjectAccessDenied):
		Forbidden(w, "Kein Zugriff auf dieses Projekt")
	case errors.Is(err, project.ErrNoChanges):
		BadRequest(w, "Keine Änderungen übermittelt", nil)

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Bericht nicht gefunden")
	case errors.Is(err, report.ErrReportAccessDenied):
		Forbidden(w, "Kein Zugriff auf diesen Bericht")
	case errors.Is(err, report.ErrTooManyImages):
		BadRequest(w, "Zu viele Bilder", nil)

	// Default
	default:
		InternalServerError(w, "Ein unerwarteter Fehler ist aufgetreten")
	}
}
