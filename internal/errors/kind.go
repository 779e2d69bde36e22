package errors

// Kind is the fetch failure taxonomy used for branching inside the
// aggregation engines. Callers outside the engines only ever see messages.
type Kind string

// Fetch failure kinds
const (
	KindNone              Kind = ""
	KindNotFound          Kind = "not_found"
	KindNetworkFailure    Kind = "network_failure"
	KindTimeout           Kind = "timeout"
	KindPartialResolution Kind = "partial_resolution"
	KindOther             Kind = "other"
)

// KindOf classifies err into the fetch taxonomy
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	switch GetCode(err) {
	case CodeNotFound:
		return KindNotFound
	case CodeUnavailable:
		return KindNetworkFailure
	case CodeDeadlineExceeded:
		return KindTimeout
	case CodePartialResolution:
		return KindPartialResolution
	default:
		return KindOther
	}
}
