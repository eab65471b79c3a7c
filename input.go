package numed

// ---------- Event processing ----------

// processKeypress applies key c to the session. It returns false when the
// editor should quit.
func (e *Editor) processKeypress(c int) bool {
	if e.quitTimes != QuitTimes && c != ctrlQ {
		e.quitTimes = QuitTimes
		e.SetStatusMessage(statusHelp)
	}
	if e.mode == modeSaveAs {
		e.processSaveAs(c)
		return true
	}
	return e.processNormal(c)
}

func (e *Editor) processNormal(c int) bool {
	switch c {
	case ctrlQ:
		if e.modified && e.quitTimes > 0 {
			e.quitTimes--
			e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more time(s) to quit.", e.quitTimes+1)
			return true
		}
		return false
	case ctrlS:
		if e.filename == "" {
			e.mode = modeSaveAs
			e.saveAsName = ""
			e.log.Debug("save as prompt opened")
			return true
		}
		e.Save()
	case keyBackspace, ctrlH:
		e.Backspace()
	case delKey:
		e.ForwardDelete()
	case keyEnter, keyLineFeed:
		e.InsertNewline()
	case arrowUp:
		e.MoveUp()
	case arrowDown:
		e.MoveDown()
	case arrowLeft:
		e.MoveLeft()
	case arrowRight:
		e.MoveRight()
	case homeKey:
		e.Home()
	case endKey:
		e.End()
	case pageUp:
		e.PageUp()
	case pageDown:
		e.PageDown()
	case ctrlA, ctrlB, ctrlC, ctrlD, ctrlL, keyEsc:
		// Nothing
	default:
		if c == keyTab || (c >= 0 && c < 256 && !isControl(c)) {
			e.typeChar(byte(c))
		}
	}
	return true
}

// typeChar inserts c at the cursor, creating the virtual row first if needed.
func (e *Editor) typeChar(c byte) {
	e.materializeVirtualRow()
	e.InsertChar(c)
}

// processSaveAs handles keys while the "Save as" prompt is open.
func (e *Editor) processSaveAs(c int) {
	switch {
	case c == ctrlQ:
		e.closeSaveAs()
	case c == keyEnter || c == keyLineFeed:
		if e.saveAsName == "" {
			return
		}
		e.filename = e.saveAsName
		e.closeSaveAs()
		e.Save()
	case c == keyBackspace || c == ctrlH:
		if n := len(e.saveAsName); n > 0 {
			e.saveAsName = e.saveAsName[:n-1]
		}
	case c > 0 && c < 256 && !isControl(c):
		e.saveAsName += string([]byte{byte(c)})
	}
}

func (e *Editor) closeSaveAs() {
	e.mode = modeNormal
	e.saveAsName = ""
	e.SetStatusMessage(statusHelp)
}
