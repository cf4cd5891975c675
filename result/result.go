package result

// Status classifies the outcome of a domain operation.
type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusAlreadyExists
	StatusPermissionDenied
	StatusInvalidInput
	StatusNotLoggedIn
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusAlreadyExists:
		return "ALREADY_EXISTS"
	case StatusPermissionDenied:
		return "PERMISSION_DENIED"
	case StatusInvalidInput:
		return "INVALID_INPUT"
	case StatusNotLoggedIn:
		return "NOT_LOGGED_IN"
	}
	return "UNKNOWN"
}

// Result is the outcome every domain operation returns. ID is -1 unless the
// operation produced an identifier (a new video or comment id).
type Result struct {
	Status  Status
	Message string
	ID      int64
}

func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

func OK(message string) Result {
	return Result{Status: StatusOK, Message: message, ID: -1}
}

// OKWithID reports success along with a newly assigned identifier.
func OKWithID(message string, id int64) Result {
	return Result{Status: StatusOK, Message: message, ID: id}
}

func NotFound(message string) Result {
	return Result{Status: StatusNotFound, Message: message, ID: -1}
}

func AlreadyExists(message string) Result {
	return Result{Status: StatusAlreadyExists, Message: message, ID: -1}
}

func PermissionDenied(message string) Result {
	return Result{Status: StatusPermissionDenied, Message: message, ID: -1}
}

func InvalidInput(message string) Result {
	return Result{Status: StatusInvalidInput, Message: message, ID: -1}
}

func NotLoggedIn(message string) Result {
	return Result{Status: StatusNotLoggedIn, Message: message, ID: -1}
}
