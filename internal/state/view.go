package state

// View is the navigation state of the application.
type View int

const (
	ViewHome View = iota
	ViewChat
	ViewDiscovery
	ViewEditor
	ViewVersion
)

func (v View) String() string {
	switch v {
	case ViewChat:
		return "chat"
	case ViewDiscovery:
		return "discovery"
	case ViewEditor:
		return "editor"
	case ViewVersion:
		return "version"
	default:
		return "home"
	}
}
