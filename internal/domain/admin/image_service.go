package admin

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const imageKeyPrefix = "adminImages"

// ImageNamer produces object keys and public URLs for admin profile images.
// Keys embed a millisecond timestamp so repeated uploads never collide on
// the original filename.
type ImageNamer struct {
	baseURL string
	now     func() time.Time
}

// NewImageNamer builds a namer rooted at baseURL, e.g.
// "https://my-bucket.s3.ap-south-1.amazonaws.com".
func NewImageNamer(baseURL string) *ImageNamer {
	return &ImageNamer{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// Key derives the object key from the upload's original filename, keeping
// only its extension: adminImages/adminImage-<unix millis><ext>.
func (n *ImageNamer) Key(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("%s/adminImage-%d%s", imageKeyPrefix, n.now().UnixMilli(), ext)
}

func (n *ImageNamer) URL(key string) string {
	return n.baseURL + "/" + key
}
