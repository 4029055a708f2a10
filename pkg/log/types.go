package log

// ZapConfig holds the logger settings read from config.LoggerConfig.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug / development enables caller + stacktrace on warn
	Encoding     string // console or json
	ColorEnabled bool
}

type ctxKey string

// Context keys whose values are attached to every log line.
const (
	keyRequestID ctxKey = "request_id"
	keyUserID    ctxKey = "user_id"
)
