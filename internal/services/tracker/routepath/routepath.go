// Package routepath holds the tracker HTTP route paths.
package routepath

const (
	Root         = "/"
	Add          = "/add"
	Get          = "/get"
	GetPrefix    = "/get/"
	GetByID      = "/get/{id}"
	Favicon      = "/favicon.ico"
	Health       = "/health"
	Dashboard    = "/dashboard"
	StaticPrefix = "/static/"
)
