package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
	MimePrefixPDF   = "application/pdf"
)

const (
	DefaultFeedLimit    = 25
	DefaultCommentLimit = 25
)

const (
	DefaultAvatarURL = "default_avatar.png"
)
