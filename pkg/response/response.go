package response

import "github.com/gin-gonic/gin"

// The wire contract is plain: resources are returned as raw JSON, failures
// as one-key objects. Keeping the shapes in one place stops handlers from
// drifting apart.

// ErrorBody is the {"error": ...} failure shape used by 400 and 500 responses.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the {"message": ...} shape used by 401 and 404 responses.
type MessageBody struct {
	Message string `json:"message"`
}

// TokenBody is the login success payload.
type TokenBody struct {
	Token string `json:"token"`
}

// Err writes {"error": msg} with the given status.
func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}

// Message writes {"message": msg} with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageBody{Message: msg})
}
