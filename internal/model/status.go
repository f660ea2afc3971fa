package model

// TaskStatus represents the status of an archive download task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means the request is being sent
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusDownloading means the body is being streamed to disk
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the archive is fully written
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusStarting || ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}

// SessionState is the state of one interactive updater session.
//
//	Idle -> Fetching -> Loaded -> (Selecting <-> Loaded) -> Copying/Installing -> Loaded
//
// Closed is only reached by an explicit exit.
type SessionState string

const (
	SessionIdle       SessionState = "Idle"
	SessionFetching   SessionState = "Fetching"
	SessionLoaded     SessionState = "Loaded"
	SessionSelecting  SessionState = "Selecting"
	SessionCopying    SessionState = "Copying"
	SessionInstalling SessionState = "Installing"
	SessionClosed     SessionState = "Closed"
)

// String returns the string representation of SessionState
func (s SessionState) String() string {
	return string(s)
}

// IsBusy reports whether a blocking pipeline step is running
func (s SessionState) IsBusy() bool {
	return s == SessionFetching || s == SessionCopying || s == SessionInstalling
}
