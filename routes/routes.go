package routes

import (
	"net/http"

	"github.com/rajat290/fitpro-connect/auth"
	"github.com/rajat290/fitpro-connect/handlers"
	"github.com/rajat290/fitpro-connect/models"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	prefix string,
	issuer *auth.TokenIssuer,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	cardHandler *handlers.CardHandler,
) {
	public := func(h http.HandlerFunc) http.Handler {
		return withCORS(http.HandlerFunc(handlers.RecoverWrapper(h)))
	}
	protected := func(h http.HandlerFunc, roles ...models.Role) http.Handler {
		return withCORS(http.HandlerFunc(handlers.RecoverWrapper(handlers.RequireAuth(issuer, roles...)(h))))
	}

	// Auth routes
	http.Handle(prefix+"/auth/signup", public(authHandler.Signup))
	http.Handle(prefix+"/auth/login", public(authHandler.Login))

	// Any authenticated role may read its own record
	http.Handle(prefix+"/users/me", protected(userHandler.Me))

	// Staff-only member listing
	http.Handle(prefix+"/members", protected(userHandler.ListMembers,
		models.RoleAdmin, models.RoleTrainer))

	// Members fetch their own card
	http.Handle(prefix+"/members/card", protected(cardHandler.MemberCard,
		models.RoleMember))

	// Liveness probe
	http.Handle(prefix+"/health", public(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
}
