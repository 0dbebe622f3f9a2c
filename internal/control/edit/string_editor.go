// Package edit implements the editing of values by the user, e.g. the name
// of a layer.
package edit

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/tileplan/internal/control/action"
	"github.com/ja-he/tileplan/internal/input"
	"github.com/ja-he/tileplan/internal/input/processors"
)

// StringEditorView allows inspection of a string editor.
type StringEditorView interface {
	// GetName returns what is being edited.
	GetName() string

	// GetContent returns the current (edited) contents.
	GetContent() string

	// GetCursorPos returns the current cursor position in the string, 0 being
	// the first character.
	GetCursorPos() int
}

// StringEditor edits a string, e.g. the name of a layer, and commits the
// result on Write.
// The cursor can be placed past the end of the content, where runes are
// appended.
type StringEditor struct {
	name      string
	content   []rune
	cursorPos int

	commit        func(string)
	quitCallbacks []func()
}

// NewStringEditor returns a string editor for the named value, starting out
// with content and the cursor past its end.
// Write passes the edited content to commit.
func NewStringEditor(name, content string, commit func(string)) *StringEditor {
	e := &StringEditor{
		name:    name,
		content: []rune(content),
		commit:  commit,
	}
	e.MoveCursorPastEnd()
	return e
}

// GetName returns what is being edited.
func (e *StringEditor) GetName() string { return e.name }

// GetContent returns the current (edited) contents.
func (e *StringEditor) GetContent() string { return string(e.content) }

// GetCursorPos returns the current cursor position in the string.
func (e *StringEditor) GetCursorPos() int { return e.cursorPos }

// DeleteRune deletes the rune at the cursor position.
func (e *StringEditor) DeleteRune() {
	if e.cursorPos < len(e.content) {
		e.content = append(e.content[:e.cursorPos], e.content[e.cursorPos+1:]...)
	}
}

// BackspaceRune deletes the rune before the cursor position.
func (e *StringEditor) BackspaceRune() {
	if e.cursorPos > 0 {
		e.content = append(e.content[:e.cursorPos-1], e.content[e.cursorPos:]...)
		e.cursorPos--
	}
}

// BackspaceToBeginning deletes all runes before the cursor position.
func (e *StringEditor) BackspaceToBeginning() {
	e.content = append([]rune{}, e.content[e.cursorPos:]...)
	e.cursorPos = 0
}

// DeleteToEnd deletes the rune at the cursor position and all after it.
func (e *StringEditor) DeleteToEnd() {
	e.content = e.content[:e.cursorPos]
}

// Clear deletes all runes in the editor.
func (e *StringEditor) Clear() {
	e.content = nil
	e.cursorPos = 0
}

// MoveCursorToBeginning moves the cursor to the beginning of the string.
func (e *StringEditor) MoveCursorToBeginning() { e.cursorPos = 0 }

// MoveCursorPastEnd moves the cursor past the end of the string.
func (e *StringEditor) MoveCursorPastEnd() { e.cursorPos = len(e.content) }

// MoveCursorLeft moves the cursor one rune to the left.
func (e *StringEditor) MoveCursorLeft() {
	if e.cursorPos > 0 {
		e.cursorPos--
	}
}

// MoveCursorRight moves the cursor one rune to the right, at most past the
// end.
func (e *StringEditor) MoveCursorRight() {
	if e.cursorPos < len(e.content) {
		e.cursorPos++
	}
}

// MoveCursorNextWordBeginning moves the cursor to the beginning of the next
// word, or past the end if there is none.
func (e *StringEditor) MoveCursorNextWordBeginning() {
	i := e.cursorPos
	for i < len(e.content) && e.content[i] != ' ' {
		i++
	}
	for i < len(e.content) && e.content[i] == ' ' {
		i++
	}
	e.cursorPos = i
}

// MoveCursorPrevWordBeginning moves the cursor to the beginning of the
// current or previous word.
func (e *StringEditor) MoveCursorPrevWordBeginning() {
	i := e.cursorPos
	for i > 0 && e.content[i-1] == ' ' {
		i--
	}
	for i > 0 && e.content[i-1] != ' ' {
		i--
	}
	e.cursorPos = i
}

// AddRune inserts a rune at the cursor position; non-printable runes are
// ignored.
func (e *StringEditor) AddRune(newRune rune) {
	if !strconv.IsPrint(newRune) {
		return
	}
	e.content = append(e.content, 0)
	copy(e.content[e.cursorPos+1:], e.content[e.cursorPos:])
	e.content[e.cursorPos] = newRune
	e.cursorPos++
}

// Write commits the current contents of the editor.
func (e *StringEditor) Write() {
	e.commit(e.GetContent())
}

// Quit the editor, calling the quit callbacks in the order they were added.
func (e *StringEditor) Quit() {
	for _, f := range e.quitCallbacks {
		f()
	}
}

// AddQuitCallback adds a callback that is called when the editor is quit.
func (e *StringEditor) AddQuitCallback(f func()) {
	e.quitCallbacks = append(e.quitCallbacks, f)
}

// CreateInputProcessor creates an input processor for the editor: runes are
// inserted, ENTER writes and quits, ESC quits without writing.
func (e *StringEditor) CreateInputProcessor() (*processors.TextInputProcessor, error) {
	p, err := processors.NewTextInputProcessor(map[input.Keyspec]action.Action{
		"<left>":  action.NewOneWay("move cursor left", e.MoveCursorLeft),
		"<right>": action.NewOneWay("move cursor right", e.MoveCursorRight),
		"<c-a>":   action.NewOneWay("move cursor to beginning", e.MoveCursorToBeginning),
		"<c-e>":   action.NewOneWay("move cursor past end", e.MoveCursorPastEnd),
		"<c-b>":   action.NewOneWay("move cursor to previous word", e.MoveCursorPrevWordBeginning),
		"<c-f>":   action.NewOneWay("move cursor to next word", e.MoveCursorNextWordBeginning),
		"<bs>":    action.NewOneWay("backspace", e.BackspaceRune),
		"<c-bs>":  action.NewOneWay("backspace", e.BackspaceRune),
		"<del>":   action.NewOneWay("delete rune", e.DeleteRune),
		"<c-u>":   action.NewOneWay("backspace to beginning", e.BackspaceToBeginning),
		"<c-k>":   action.NewOneWay("delete to end", e.DeleteToEnd),
		"<c-l>":   action.NewOneWay("clear", e.Clear),
		"<cr>":    action.NewOneWay("write and quit", func() { e.Write(); e.Quit() }),
		"<esc>":   action.NewOneWay("quit", e.Quit),
	}, e.AddRune)
	if err != nil {
		return nil, fmt.Errorf("could not construct string editor input processor (%w)", err)
	}
	log.Debug().Str("name", e.name).Msg("created string editor input processor")
	return p, nil
}
