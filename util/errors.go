package util

type Error struct {
	Message string
}

func (err *Error) Error() string {
	return err.Message
}

var (
	ErrInvalidURL          = &Error{Message: "invalid URL format. please send a valid link"}
	ErrUnsupportedPlatform = &Error{Message: "unsupported platform. supported: TikTok, Instagram, YouTube, LinkedIn"}
	ErrNoMediaFound        = &Error{Message: "no media found or invalid URL"}
	ErrFileTooLarge        = &Error{Message: "file is too large"}
)
