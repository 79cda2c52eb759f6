package board

// Visible selects the messages a client may display. Private messages are
// included only when showPrivate is set; callers derive that flag from
// their session (authenticated and opted in). The server returns every
// message to every caller, so this filter is the sole privacy policy.
func Visible(messages []Message, showPrivate bool) []Message {
	filtered := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.IsPrivate && !showPrivate {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}
