package posts

// PostsError is a custom error type for post polling errors
type PostsError string

// Error implements the error interface
func (e PostsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig   PostsError = "config cannot be nil"
	ErrNilPlatform PostsError = "platform client cannot be nil"
	ErrNilRoomRepo PostsError = "room repository cannot be nil"
)
