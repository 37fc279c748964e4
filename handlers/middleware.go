// Package handlers wires the HTTP surface: one file per operation, each
// returning a closure over the app.
package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

type contextKey string

const companyIDKey contextKey = "companyID"

// CompanyID extracts the authenticated tenant key from the request
// context. Empty when RequireCompany has not run.
func CompanyID(r *http.Request) string {
	if val, ok := r.Context().Value(companyIDKey).(string); ok {
		return val
	}
	return ""
}

// WithCompanyID returns a request whose context carries the tenant key.
// Exposed for handler tests.
func WithCompanyID(r *http.Request, companyID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), companyIDKey, companyID))
}

// RequireCompany resolves the company linked to the authenticated user and
// threads it into the request context. Every dashboard route runs behind
// it; handlers never consult ambient auth state themselves.
func RequireCompany(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Auth == nil {
			return apis.NewUnauthorizedError("Authentication required.", nil)
		}
		companyID := e.Auth.GetString("company")
		if companyID == "" {
			return apis.NewForbiddenError("No company is linked to this account.", nil)
		}
		e.Request = WithCompanyID(e.Request, companyID)
		return e.Next()
	}
}
