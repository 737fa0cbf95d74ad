package menu

type Action int

const (
	ActionNone Action = iota
	ActionChanged
	ActionSave
	ActionOpenProfiles
	ActionLoadProfile
	ActionClose
)
