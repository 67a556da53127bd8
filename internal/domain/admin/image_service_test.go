package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestImageNamer_Key(t *testing.T) {
	t.Parallel()

	namer := NewImageNamer("https://bucket.s3.ap-south-1.amazonaws.com")
	namer.now = func() time.Time { return time.UnixMilli(1700000000000) }

	assert.Equal(t, "adminImages/adminImage-1700000000000.png", namer.Key("avatar.png"))
	assert.Equal(t, "adminImages/adminImage-1700000000000.jpg", namer.Key("PHOTO.JPG"))
	assert.Equal(t, "adminImages/adminImage-1700000000000", namer.Key("noextension"))
}

func TestImageNamer_URL(t *testing.T) {
	t.Parallel()

	namer := NewImageNamer("https://bucket.s3.ap-south-1.amazonaws.com/")
	assert.Equal(t,
		"https://bucket.s3.ap-south-1.amazonaws.com/adminImages/adminImage-1.png",
		namer.URL("adminImages/adminImage-1.png"),
	)
}
