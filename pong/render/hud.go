package render

// Label is a text sink the renderer draws from.
type Label struct {
	text string
}

func (l *Label) SetText(text string) {
	l.text = text
}

func (l *Label) Text() string {
	return l.text
}

// HUD holds the text drawn over the playfield: both scores and the
// end-of-game banner. It doubles as the game's notifier.
type HUD struct {
	PlayerScore Label
	AIScore     Label
	Banner      Label
}

// Notify shows text as the banner until Clear is called.
func (h *HUD) Notify(text string) {
	h.Banner.SetText(text)
}

// Clear removes the banner.
func (h *HUD) Clear() {
	h.Banner.SetText("")
}
