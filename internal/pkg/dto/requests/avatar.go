package requests

import "io"

// AvatarUpload is the image selected by the picker, packaged for the
// multipart PATCH. FileName follows the `<user id>.jpg` convention.
// Content is closed by whoever consumes the upload.
type AvatarUpload struct {
	FileName    string
	ContentType string
	Content     io.ReadCloser
}
