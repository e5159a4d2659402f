package review

// queueLoadedMsg is sent when the due-card queue has been fetched.
type queueLoadedMsg struct{}
