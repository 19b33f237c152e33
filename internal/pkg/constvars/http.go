package constvars

const (
	MIMETextPlain                  = "text/plain"
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusGone            = 410
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderAPIKey        = "x-api-key"
)
