package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher

	// Diagnostics
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config

	// Layout tree
	IconSplitH   = "\uf0db" // columns
	IconSplitV   = "\uf0c9" // bars
	IconFrame    = "\uf2d2" // window
	IconFloating = "\uf2d0" // window maximize
	IconDrawer   = "\uf187" // archive
	IconPanel    = "\uf15b" // file
	IconCursor   = "\uf054" // chevron-right
)
