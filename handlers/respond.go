package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

// jsonSuccess writes the {"status":"success","data":...} envelope every
// endpoint responds with on the happy path.
func jsonSuccess(e *core.RequestEvent, data any) error {
	return e.JSON(http.StatusOK, map[string]any{
		"status": "success",
		"data":   data,
	})
}
