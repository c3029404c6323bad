package audit

const (
	LogPrefixRecord  = "internal.audit.Record"
	LogPrefixNATS    = "internal.audit.NATSSink"
	LogPrefixConnect = "internal.audit.Connect"

	DefaultCapacity = 1000
	DefaultSubject  = "secure_intent_router.audit.records"
)
