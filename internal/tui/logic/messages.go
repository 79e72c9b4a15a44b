package logic

import "github.com/hy4ri/tasklist-tui/internal/api"

// Results of remote calls. Each carries what Update needs to reconcile the
// view state, since the state may have moved on while the request was out.
type itemsLoadedMsg struct {
	items []api.Item
	err   error
}

type itemCreatedMsg struct {
	title string
	item  *api.Item
	err   error
}

type toggleResultMsg struct {
	id        int64
	completed bool
	snapshot  []api.Item // list as it was just before the optimistic flip
	err       error
}

type editSavedMsg struct {
	id    int64
	title string
	err   error
}

type itemDeletedMsg struct {
	id  int64
	err error
}

type statusMsg struct{ msg string }
