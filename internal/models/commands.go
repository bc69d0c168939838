package models

// Command identifies a user action reachable from the menu bar.
type Command string

const (
	CommandNew          Command = "file.new"
	CommandOpen         Command = "file.open"
	CommandSave         Command = "file.save"
	CommandExit         Command = "file.exit"
	CommandCopy         Command = "edit.copy"
	CommandPaste        Command = "edit.paste"
	CommandCut          Command = "edit.cut"
	CommandFontSettings Command = "settings.font"
)

// MenuItem binds a command to its menu label.
type MenuItem struct {
	Command Command
	Label   string
	// SeparatorBefore draws a separator above the item.
	SeparatorBefore bool
}

// Menu is one top-level entry of the menu bar.
type Menu struct {
	Label string
	Items []MenuItem
}

// MenuBar is the fixed menu layout of the editor window.
func MenuBar() []Menu {
	return []Menu{
		{Label: "File", Items: []MenuItem{
			{Command: CommandNew, Label: "New"},
			{Command: CommandOpen, Label: "Open..."},
			{Command: CommandSave, Label: "Save..."},
			{Command: CommandExit, Label: "Exit", SeparatorBefore: true},
		}},
		{Label: "Edit", Items: []MenuItem{
			{Command: CommandCopy, Label: "Copy"},
			{Command: CommandPaste, Label: "Paste"},
			{Command: CommandCut, Label: "Cut"},
		}},
		{Label: "Settings", Items: []MenuItem{
			{Command: CommandFontSettings, Label: "Font/Size..."},
		}},
	}
}
