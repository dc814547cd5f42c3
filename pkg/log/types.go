package log

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

type ctxKey string

// RequestIDKey is the context key the middleware stores the request id under.
const RequestIDKey ctxKey = "request_id"

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"
)
