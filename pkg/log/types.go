package log

// ZapConfig configures the zap backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string // "production" or "debug"
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

const (
	ModeProduction = "production"
	EncodingJSON   = "json"

	fieldRequestID = "request_id"
)

type requestIDKey struct{}
