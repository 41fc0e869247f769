//go:build !nogui
// +build !nogui

package gui

import (
	"fmt"

	"invisinote/internal/session"
	"invisinote/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// actionButton pairs a toolbar label with the action it runs.
type actionButton struct {
	label  string
	action string
	icon   fyne.Resource
}

var noteButtons = []actionButton{
	{"Load notes", session.ActionLoad, theme.ViewRefreshIcon()},
	{"Previous note", session.ActionPrevNote, theme.NavigateBackIcon()},
	{"Next note", session.ActionNextNote, theme.NavigateNextIcon()},
	{"Read note", session.ActionReadNote, theme.DocumentIcon()},
	{"Copy note", session.ActionCopyNote, theme.ContentCopyIcon()},
}

var cursorButtons = []actionButton{
	{"Previous line", session.ActionPrevLine, theme.MoveUpIcon()},
	{"Next line", session.ActionNextLine, theme.MoveDownIcon()},
	{"Previous word", session.ActionPrevWord, nil},
	{"Next word", session.ActionNextWord, nil},
	{"Previous char", session.ActionPrevChar, nil},
	{"Next char", session.ActionNextChar, nil},
	{"Copy line", session.ActionCopyLine, theme.ContentCopyIcon()},
}

var folderButtons = []actionButton{
	{"Previous folder", session.ActionPrevFolder, theme.NavigateBackIcon()},
	{"Next folder", session.ActionNextFolder, theme.NavigateNextIcon()},
	{"Open folder", session.ActionOpenFolder, theme.FolderOpenIcon()},
}

// setupMainWindow sets up the main window content
func (a *App) setupMainWindow() {
	a.folderLabel = widget.NewLabel("")
	a.noteLabel = widget.NewLabel("")
	a.lineLabel = widget.NewLabel("")
	a.lineLabel.Wrapping = fyne.TextWrapWord
	a.wordLabel = widget.NewLabel("")
	a.charLabel = widget.NewLabel("")
	a.announceLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.announceLabel.Wrapping = fyne.TextWrapWord

	position := widget.NewForm(
		widget.NewFormItem("Folder", a.folderLabel),
		widget.NewFormItem("Note", a.noteLabel),
		widget.NewFormItem("Line", a.lineLabel),
		widget.NewFormItem("Word", a.wordLabel),
		widget.NewFormItem("Char", a.charLabel),
	)

	a.folderEntry = widget.NewMultiLineEntry()
	a.folderEntry.SetPlaceHolder("One folder path per line")
	a.folderEntry.SetMinRowsVisible(4)
	a.folderEntry.SetText(a.sess.FolderListText())
	a.saveButton = widget.NewButtonWithIcon("Save folders", theme.DocumentSaveIcon(), func() {
		a.saveFolders()
	})

	folderCard := widget.NewCard("Note folders", "Missing folders are dropped on save",
		container.NewBorder(nil, container.NewHBox(layout.NewSpacer(), a.saveButton), nil, nil, a.folderEntry))

	content := container.NewBorder(
		container.NewVBox(
			widget.NewLabelWithStyle("Invisinote", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			position,
			widget.NewSeparator(),
		),
		container.NewVBox(
			widget.NewSeparator(),
			a.announceLabel,
		),
		nil,
		nil,
		container.NewVScroll(container.NewVBox(
			a.buttonRow(noteButtons),
			a.buttonRow(cursorButtons),
			a.buttonRow(folderButtons),
			folderCard,
		)),
	)

	a.mainWindow.SetContent(content)
	a.mainWindow.Resize(fyne.NewSize(720, 560))

	a.mainWindow.Canvas().SetOnTypedRune(a.typedRune)
	a.mainWindow.Canvas().SetOnTypedKey(a.typedKey)
	a.refresh(session.Outcome{})
}

func (a *App) buttonRow(defs []actionButton) fyne.CanvasObject {
	row := container.NewGridWithColumns(len(defs))
	for _, def := range defs {
		action := def.action
		button := widget.NewButtonWithIcon(def.label, def.icon, func() {
			a.perform(action)
		})
		a.buttons[action] = button
		row.Add(button)
	}
	return row
}

// refresh redraws the labels from the session and shows out as the
// announcement. A zero Outcome leaves the announcement as is.
func (a *App) refresh(out session.Outcome) {
	a.mu.Lock()
	folder, _ := a.sess.Manager().ActiveFolder()
	note, hasNote := a.sess.Manager().CurrentNote()
	count := len(a.sess.Manager().Notes())
	pos := a.sess.Position()
	cur := a.sess.Cursor()
	lineCount := cur.LineCount()
	line := cur.CurrentLineText()
	word := cur.CurrentWordText()
	char := cur.CurrentCharText()
	a.mu.Unlock()

	if folder == "" {
		folder = "(no folder)"
	}
	a.folderLabel.SetText(folder)
	if hasNote {
		a.noteLabel.SetText(fmt.Sprintf("%s (%d/%d)", note.Name, pos.Note+1, count))
	} else {
		a.noteLabel.SetText("(no note)")
	}
	if lineCount > 0 {
		a.lineLabel.SetText(fmt.Sprintf("%d/%d  %s", pos.Line+1, lineCount, line))
	} else {
		a.lineLabel.SetText("(no lines)")
	}
	a.wordLabel.SetText(word)
	a.charLabel.SetText(fmt.Sprintf("%q", char))

	if out.Action != "" {
		a.announceLabel.SetText(out.Text)
		if out.OK() {
			a.announceLabel.Importance = widget.MediumImportance
		} else {
			a.announceLabel.Importance = widget.DangerImportance
		}
		a.announceLabel.Refresh()
	}
}

// keyActions flattens the shared keymap into key name to action.
func keyActions(k types.KeyMap) map[string]string {
	table := map[string]string{}
	add := func(action string, keys []string) {
		for _, name := range keys {
			table[name] = action
		}
	}
	add(session.ActionLoad, k.LoadNotes.Keys())
	add(session.ActionPrevNote, k.PrevNote.Keys())
	add(session.ActionNextNote, k.NextNote.Keys())
	add(session.ActionPrevLine, k.PrevLine.Keys())
	add(session.ActionNextLine, k.NextLine.Keys())
	add(session.ActionPrevWord, k.PrevWord.Keys())
	add(session.ActionNextWord, k.NextWord.Keys())
	add(session.ActionPrevChar, k.PrevChar.Keys())
	add(session.ActionNextChar, k.NextChar.Keys())
	add(session.ActionReadNote, k.ReadNote.Keys())
	add(session.ActionCopyNote, k.CopyNote.Keys())
	add(session.ActionCopyLine, k.CopyLine.Keys())
	add(session.ActionOpenFolder, k.OpenFolder.Keys())
	add(session.ActionPrevFolder, k.PrevFolder.Keys())
	add(session.ActionNextFolder, k.NextFolder.Keys())
	return table
}

func (a *App) typedRune(r rune) {
	name := string(r)
	if a.keys.Quit.Enabled() && contains(a.keys.Quit.Keys(), name) {
		a.fyneApp.Quit()
		return
	}
	if contains(a.keys.EditFolders.Keys(), name) {
		a.mainWindow.Canvas().Focus(a.folderEntry)
		return
	}
	if action, ok := a.keyActions[name]; ok {
		a.perform(action)
	}
}

// fyneKeyNames maps fyne key names onto the keymap's names.
var fyneKeyNames = map[fyne.KeyName]string{
	fyne.KeyUp:     "up",
	fyne.KeyDown:   "down",
	fyne.KeyLeft:   "left",
	fyne.KeyRight:  "right",
	fyne.KeyEscape: "esc",
}

func (a *App) typedKey(ke *fyne.KeyEvent) {
	name, ok := fyneKeyNames[ke.Name]
	if !ok {
		return
	}
	if action, found := a.keyActions[name]; found {
		a.perform(action)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
