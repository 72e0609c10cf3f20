package main

import (
	"golang.design/x/clipboard"

	"carousel3d/internal/utils"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	cm := &TheClipboardManager
	err := clipboard.Init()
	cm.Initialized = err == nil
	if err != nil {
		utils.Warn("Clipboard unavailable: %v", err)
	}
}

// ClipboardWriteText reports whether the text reached the clipboard.
func ClipboardWriteText(str string) bool {
	cm := &TheClipboardManager
	if !cm.Initialized {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(str))
	return true
}
