// Package notice carries inline messages shown to the user on the page.
package notice

// Level is the visual severity of a notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a single user-visible message.
type Notice struct {
	Level   Level
	Message string
}

func Success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }
func Info(msg string) Notice { return Notice{Level: LevelInfo, Message: msg} }
func Warning(msg string) Notice { return Notice{Level: LevelWarning, Message: msg} }
func Error(msg string) Notice { return Notice{Level: LevelError, Message: msg} }
