package workout

// Storage keys. Primary entities live under a typed prefix; index
// documents are single well-known keys rewritten in full on every change,
// because the store offers no listing or range scans.
const (
	exercisePrefix     = "exercise:"
	exerciseIndex      = "exercise_index"
	templatePrefix     = "template:"
	templateIndex      = "template_index"
	sessionPrefix      = "session:"
	sessionIndexPrefix = "session_index:"
)

func exerciseKey(name string) string { return exercisePrefix + name }

func templateKey(name string) string { return templatePrefix + name }

func sessionKey(id string) string { return sessionPrefix + id }

func sessionIndexKey(templateName string) string { return sessionIndexPrefix + templateName }
