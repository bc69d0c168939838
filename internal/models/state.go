package models

import "fyne.io/fyne/v2"

// EditorState is the mutable application state owned by the controller.
// It is only touched from the UI goroutine.
type EditorState struct {
	Font       FontPreference
	CurrentURI fyne.URI
}

func NewEditorState(fontSize float32) *EditorState {
	return &EditorState{Font: DefaultFontPreference(fontSize)}
}

// DocumentName is the base name of the current file, or "Untitled".
func (s *EditorState) DocumentName() string {
	if s.CurrentURI == nil {
		return "Untitled"
	}
	return s.CurrentURI.Name()
}
