package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/partsbay/catalog-api/app/helpers"
	"github.com/partsbay/catalog-api/app/models"
	"github.com/partsbay/catalog-api/app/repositories"
	"github.com/partsbay/catalog-api/app/utils/sessions"
	"github.com/unrolled/render"
)

// AdminAuthMiddleware resolves the session principal and requires the admin
// role before letting a mutating catalog request through.
func AdminAuthMiddleware(userRepo repositories.UserRepositoryImpl, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessions.GetUserID(r)
			if err != nil || userID == "" {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("AdminAuthMiddleware: failed to resolve user %s: %v", userID, err)
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
				return
			}

			if user.Role != models.RoleAdmin {
				_ = rnd.JSON(w, http.StatusForbidden, map[string]string{"detail": "Admin privileges required"})
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
