package constant

type contextKey string

const (
	ActorKey     contextKey = "actor"
	SessionIDKey contextKey = "session_id"
)
