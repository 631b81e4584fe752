package plottest

// Host records the requests a chart object raises. It implements
// plot.ObjectHost.
type Host struct {
	Redraws   int
	Refreshes int
	Messages  []string
	Deleted   []string
	Saved     []string
}

func (h *Host) Redraw()                   { h.Redraws++ }
func (h *Host) Refresh()                  { h.Refreshes++ }
func (h *Host) Message(text string)       { h.Messages = append(h.Messages, text) }
func (h *Host) ObjectDeleted(name string) { h.Deleted = append(h.Deleted, name) }
func (h *Host) SaveObject(name string)    { h.Saved = append(h.Saved, name) }

// LastMessage returns the most recent message or ""
func (h *Host) LastMessage() string {
	if len(h.Messages) == 0 {
		return ""
	}
	return h.Messages[len(h.Messages)-1]
}
