package easyterm

// List of keycodes used by terminal input loops.
const (
	KeyInterrupt = 3 // ctrl-c
	KeyEndOfFile = 4 // ctrl-d
	KeyBackspace = 8
	KeyTab       = 9
	KeyCarriage  = 13
	KeyEsc       = 27
	KeyDelete    = 127
)
