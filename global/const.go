package global

const (
	AppVersion = "1.0.0" // shown in boot log and /healthz

	// Gin context key for the authenticated JWT subject.
	CtxSubjectKey = "sub"
)
