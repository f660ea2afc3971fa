package session

// Package session drives the update workflow for one user. It owns the
// current catalog snapshot, the selection and the cursor, and turns every
// front-end command into pipeline calls and view updates.
//
// A Session serializes its actions: a command blocks until the previous one
// has finished. Front-ends with an event loop should dispatch from a worker
// goroutine.
